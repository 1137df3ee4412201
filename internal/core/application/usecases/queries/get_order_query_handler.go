package queries

import (
	"context"
	"errors"

	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// GetOrderQueryHandler returns one order. Orders the actor may not view are reported as
// not found, so their existence is not disclosed.
type GetOrderQueryHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
	policy     services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(
	identities ports.IdentityStore,
	orders ports.OrderStore,
	policy services.OrderAccessPolicy,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{identities: identities, orders: orders, policy: policy}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	actor, err := resolveActor(ctx, h.identities, query.ActorID())
	if err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if !h.policy.CanView(actor, o) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var ownerEmail string
	if actor.IsAdmin() {
		owner, err := h.identities.Get(ctx, o.OwnerID())
		switch {
		case err == nil:
			ownerEmail = owner.Email()
		case !errors.Is(err, errs.ErrObjectNotFound):
			return OrderView{}, err
		}
	}
	return NewOrderView(o, ownerEmail), nil
}

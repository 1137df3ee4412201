package commands

import (
	"context"

	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status change authorized by the
// OrderAccessPolicy. The policy runs against the order as currently stored, under the
// order store's lock, so two concurrent changes cannot both pass a stale check.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(adminID, 7, "IN_PROGRESS")
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // the actor may not make this change
//	case errors.Is(err, order.ErrIllegalTransition):
//	    // not allowed from the current status
//	}
type ChangeOrderStatusCommandHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
	policy     services.OrderAccessPolicy
}

func NewChangeOrderStatusCommandHandler(
	identities ports.IdentityStore,
	orders ports.OrderStore,
	policy services.OrderAccessPolicy,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{identities: identities, orders: orders, policy: policy}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	return h.orders.SetStatusIf(ctx, cmd.OrderID(), cmd.Status(), func(current *order.Order) error {
		return h.policy.AuthorizeStatusChange(actor, current, cmd.Status())
	})
}

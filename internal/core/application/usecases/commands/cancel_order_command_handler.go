package commands

import (
	"context"

	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders. Only PENDING orders can be cancelled, by
// their owner or by an administrator.
type CancelOrderCommandHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
	policy     services.OrderAccessPolicy
}

func NewCancelOrderCommandHandler(
	identities ports.IdentityStore,
	orders ports.OrderStore,
	policy services.OrderAccessPolicy,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{identities: identities, orders: orders, policy: policy}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	return h.orders.SetStatusIf(ctx, cmd.OrderID(), order.Rejected, func(current *order.Order) error {
		return h.policy.AuthorizeCancel(actor, current)
	})
}

package commands

import (
	"context"

	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
)

// DeleteOrderCommandHandler lets administrators delete orders in any status.
type DeleteOrderCommandHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
	policy     services.OrderAccessPolicy
}

func NewDeleteOrderCommandHandler(
	identities ports.IdentityStore,
	orders ports.OrderStore,
	policy services.OrderAccessPolicy,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{identities: identities, orders: orders, policy: policy}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return err
	}
	if err = h.policy.AuthorizeOrderDeletion(actor); err != nil {
		return err
	}

	return h.orders.Remove(ctx, cmd.OrderID())
}

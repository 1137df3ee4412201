package commands

import (
	"context"

	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
)

// DeleteUserCommandHandler removes accounts that own no IN_PROGRESS order.
//
// The order check and the removal touch two stores and are not atomic: an order of the
// target moved to IN_PROGRESS between both steps is not noticed. Orders are never
// cascaded; they keep referencing the removed account.
//
// Example:
//
//	cmd, _ := NewDeleteUserCommand(adminID, userID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrUserHasActiveOrders) {
//	    // ask the administrator to finish or reject the orders first
//	}
type DeleteUserCommandHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
	policy     services.OrderAccessPolicy
}

func NewDeleteUserCommandHandler(
	identities ports.IdentityStore,
	orders ports.OrderStore,
	policy services.OrderAccessPolicy,
) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{identities: identities, orders: orders, policy: policy}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return err
	}
	if _, err = h.identities.Get(ctx, cmd.TargetID()); err != nil {
		return err
	}

	owned, err := h.orders.ListFor(ctx, cmd.TargetID())
	if err != nil {
		return err
	}
	if err = h.policy.AuthorizeUserDeletion(actor, cmd.TargetID(), owned); err != nil {
		return err
	}

	return h.identities.Remove(ctx, cmd.TargetID())
}

package commands

import (
	"context"

	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/ports"
)

// CreateOrderCommandHandler creates PENDING orders.
//
// The owner must be a registered user when the order is created. The reference is not
// re-validated later, so orders outlive the deletion of their owner.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(identities, orders)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // owner is not registered
//	}
type CreateOrderCommandHandler struct {
	identities ports.IdentityStore
	orders     ports.OrderStore
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(identities ports.IdentityStore, orders ports.OrderStore) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		identities: identities,
		orders:     orders,
	}
}

// Handle checks that the owner exists and stores the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.identities.Get(ctx, cmd.OwnerID()); err != nil {
		return nil, err
	}

	return h.orders.Create(ctx, cmd.OwnerID(), cmd.Shipment())
}

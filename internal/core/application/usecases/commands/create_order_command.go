package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a shipment order for the actor.
// The shipment is validated here; the order id and createdAt are assigned by the store.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actorID, order.ShipmentParams{
//	    Name: "Pallets", Description: "Two pallets of tiles", Address: "Av. Matta 100",
//	    Quantity: 2, Height: 1.2, Length: 1, Width: 0.8, Weight: 300,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	// o.ID() == previous id + 1, o.Status() == order.Pending
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	shipment order.Shipment

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the owner id and every shipment field.
func NewCreateOrderCommand(ownerID kernel.UUID, params order.ShipmentParams) (CreateOrderCommand, error) {
	shipment, errShipment := order.NewShipment(params)
	if err := errors.Join(ownerID.Validate(), errShipment); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		ownerID:  ownerID,
		shipment: shipment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OwnerID() kernel.UUID     { return c.ownerID }
func (c CreateOrderCommand) Shipment() order.Shipment { return c.shipment }

package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand permanently removes an order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actorID kernel.UUID, orderID int64) (DeleteOrderCommand, error) {
	if err := errors.Join(actorID.Validate(), validateOrderID(orderID)); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c DeleteOrderCommand) OrderID() int64       { return c.orderID }

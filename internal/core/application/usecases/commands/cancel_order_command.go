package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand moves a PENDING order to REJECTED on behalf of its owner.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actorID kernel.UUID, orderID int64) (CancelOrderCommand, error) {
	if err := errors.Join(actorID.Validate(), validateOrderID(orderID)); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) OrderID() int64       { return c.orderID }

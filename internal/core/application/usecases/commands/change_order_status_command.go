package commands

import (
	"errors"
	"fmt"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a new status on behalf of the actor.
// Whether the actor may do so is decided by the handler.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(actorID kernel.UUID, orderID int64, status string) (ChangeOrderStatusCommand, error) {
	parsed, errStatus := order.ParseStatus(status)
	if err := errors.Join(actorID.Validate(), validateOrderID(orderID), errStatus); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		actorID: actorID,
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeOrderStatusCommand) OrderID() int64       { return c.orderID }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

func validateOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

package queries

import (
	"errors"
	"fmt"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches a single order visible to the actor.
type GetOrderQuery struct {
	actorID kernel.UUID
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actorID kernel.UUID, orderID int64) (GetOrderQuery, error) {
	var errID error
	if orderID <= 0 {
		errID = errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	if err := errors.Join(actorID.Validate(), errID); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderQuery) OrderID() int64       { return q.orderID }

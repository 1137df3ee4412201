package queries

import (
	"errors"
	"strconv"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the actor.
//
// Status is optional: an empty string lists every status. Search matches the order id,
// name and description case-insensitively, and for administrators also the owner's email.
//
// Example:
//
//	query, err := NewListOrdersQuery(actorID, "PENDING", "tiles")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
//	// newest first
type ListOrdersQuery struct {
	actorID kernel.UUID
	status  *order.Status
	search  string

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actorID kernel.UUID, status, search string) (ListOrdersQuery, error) {
	var filter *order.Status
	var errStatus error
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := order.ParseStatus(status)
		filter, errStatus = &parsed, err
	}
	if err := errors.Join(actorID.Validate(), errStatus); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID: actorID,
		status:  filter,
		search:  strings.ToLower(strings.TrimSpace(search)),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ActorID() kernel.UUID { return q.actorID }

func (q ListOrdersQuery) matches(o *order.Order, ownerEmail string) bool {
	if q.status != nil && o.Status() != *q.status {
		return false
	}
	if q.search == "" {
		return true
	}
	return strings.Contains(strconv.FormatInt(o.ID(), 10), q.search) ||
		strings.Contains(strings.ToLower(o.Shipment().Name()), q.search) ||
		strings.Contains(strings.ToLower(o.Shipment().Description()), q.search) ||
		(ownerEmail != "" && strings.Contains(strings.ToLower(ownerEmail), q.search))
}

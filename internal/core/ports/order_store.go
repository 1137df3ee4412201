package ports

import (
	"context"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
)

// StatusGuard inspects a copy of the current order before a status change.
type StatusGuard func(current *order.Order) error

// OrderStore owns the orders and the order id sequence. It applies no authorization and
// no transition graph; callers consult services.OrderAccessPolicy first.
type OrderStore interface {
	// Create stores a new PENDING order for ownerID with the next id in the sequence.
	// Ids are never reused, deleting an order does not free its id.
	Create(ctx context.Context, ownerID kernel.UUID, shipment order.Shipment) (*order.Order, error)

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// SetStatus overwrites the status of the order.
	// Returns errs.ObjectNotFoundError when absent.
	SetStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error)

	// SetStatusIf is SetStatus with a guard evaluated against the current order while the
	// store holds its write lock. A guard error aborts the change and is returned as is.
	SetStatusIf(ctx context.Context, id int64, status order.Status, guard StatusGuard) (*order.Order, error)

	// Remove deletes the order. Returns errs.ObjectNotFoundError when absent.
	Remove(ctx context.Context, id int64) error

	// ListFor returns the orders that reference ownerID, unsorted.
	ListFor(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, unsorted.
	ListAll(ctx context.Context) ([]*order.Order, error)
}

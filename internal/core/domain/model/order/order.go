package order

import (
	"errors"
	"fmt"
	"time"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the shipment domain.
//
// Order follows these invariants:
//   - id is a positive sequence number assigned by the order store and never changes
//   - ownerID references an existing user at creation time; it is not an ownership
//     relation and is not revisited if that user is later deleted
//   - shipment is validated (non-empty texts, quantity >= 1, positive measurements)
//   - createdAt is fixed at creation
//   - status changes only through ChangeStatus or Cancel
type Order struct {
	id        int64
	ownerID   kernel.UUID
	shipment  Shipment
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in PENDING status.
//
// Example:
//
//	shipment, _ := order.NewShipment(order.ShipmentParams{
//	    Name: "Pallets", Description: "Two pallets", Address: "Av. Matta 100",
//	    Quantity: 2, Height: 1.2, Length: 1, Width: 0.8, Weight: 300,
//	})
//	o, err := order.NewOrder(1, ownerID, shipment, time.Now())
func NewOrder(id int64, ownerID kernel.UUID, shipment Shipment, createdAt time.Time) (*Order, error) {
	return RestoreOrder(id, ownerID, shipment, Pending, createdAt)
}

// RestoreOrder rebuilds an order with an arbitrary status, e.g. from a snapshot.
func RestoreOrder(
	id int64,
	ownerID kernel.UUID,
	shipment Shipment,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setShipment(shipment),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) OwnerID() kernel.UUID { return o.ownerID }
func (o *Order) Shipment() Shipment   { return o.shipment }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsOwnedBy reports whether the order references userID as its owner.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// ChangeStatus overwrites the status with any valid value. Transition rules are the
// caller's concern (see TransitionMode and the order access policy).
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// Cancel moves a PENDING order to REJECTED.
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setShipment(shipment Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}
	o.shipment = shipment
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

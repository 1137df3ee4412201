// Package queries contains the read use cases. Every query is built through its
// constructor and executed by a handler that returns read models (views) rather than
// domain aggregates, so callers never hold references into the stores.
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// RepresentativeView is the contact person of a BUSINESS account.
type RepresentativeView struct {
	Name     string
	Phone    string
	Position string
}

// UserView is the public read model of an account. It never carries the credential.
//
// Example:
//
//	view := UserView{
//	    ID:    kernel.NewUUID(),
//	    Email: "ana@example.cl",
//	    Name:  "Ana",
//	    RUT:   "12.345.678-5",
//	    Phone: "+56912345678",
//	    Role:  user.Individual,
//	}
type UserView struct {
	ID              kernel.UUID
	Email           string
	Name            string
	RUT             string
	Phone           string
	Role            user.Role
	BusinessName    string
	BusinessAddress string
	Representative  *RepresentativeView
}

// NewUserView projects u into its read model.
func NewUserView(u *user.User) UserView {
	view := UserView{
		ID:              u.ID(),
		Email:           u.Email(),
		Name:            u.Name(),
		RUT:             u.RUT().String(),
		Phone:           u.Phone().String(),
		Role:            u.Role(),
		BusinessName:    u.BusinessName(),
		BusinessAddress: u.BusinessAddress(),
	}
	if rep := u.Representative(); rep != nil {
		view.Representative = &RepresentativeView{
			Name:     rep.Name(),
			Phone:    rep.Phone().String(),
			Position: rep.Position(),
		}
	}
	return view
}

// OrderView is the read model of an order. OwnerEmail is only filled for administrators
// and is empty when the owner account no longer exists.
type OrderView struct {
	ID          int64
	OwnerID     kernel.UUID
	OwnerEmail  string
	Name        string
	Description string
	Address     string
	Quantity    int
	Height      float64
	Length      float64
	Width       float64
	Weight      float64
	Status      order.Status
	CreatedAt   time.Time
}

// NewOrderView projects o into its read model.
func NewOrderView(o *order.Order, ownerEmail string) OrderView {
	s := o.Shipment()
	return OrderView{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		OwnerEmail:  ownerEmail,
		Name:        s.Name(),
		Description: s.Description(),
		Address:     s.Address(),
		Quantity:    s.Quantity(),
		Height:      s.Height(),
		Length:      s.Length(),
		Width:       s.Width(),
		Weight:      s.Weight(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
	}
}

func resolveActor(ctx context.Context, identities ports.IdentityStore, actorID kernel.UUID) (*user.User, error) {
	actor, err := identities.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: user %s no longer exists", ports.ErrInvalidToken, actorID)
	}
	return actor, err
}

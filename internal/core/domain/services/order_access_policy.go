package services

import (
	"errors"
	"fmt"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/errs"
)

// ErrUserHasActiveOrders is returned when deleting a user that still owns an order in
// IN_PROGRESS status.
var ErrUserHasActiveOrders = errors.New("user has orders in progress")

// OrderAccessPolicy is a domain service that gates order mutations by role and ownership.
//
// Business rules:
//   - Administrators may set any status. In Strict mode only the workflow arrows are allowed
//   - Other users may only cancel their own PENDING orders (PENDING -> REJECTED)
//   - Only administrators delete orders
//   - Users see only their own orders, administrators see all of them
//   - A user account is removed by an administrator or by its owner, and never while the
//     user owns an IN_PROGRESS order
//
// Example usage:
//
//	policy := services.NewOrderAccessPolicy(order.Permissive)
//	if err := policy.AuthorizeStatusChange(actor, o, order.InProgress); err != nil {
//	    return err
//	}
//	// apply the change through the order store
type OrderAccessPolicy struct {
	mode order.TransitionMode
}

// NewOrderAccessPolicy creates a policy that checks administrative transitions with mode.
func NewOrderAccessPolicy(mode order.TransitionMode) OrderAccessPolicy {
	return OrderAccessPolicy{mode: mode}
}

// Mode returns the configured transition mode.
func (p OrderAccessPolicy) Mode() order.TransitionMode {
	return p.mode
}

// CanView reports whether actor may read o.
func (p OrderAccessPolicy) CanView(actor *user.User, o *order.Order) bool {
	if actor == nil || o == nil {
		return false
	}
	return actor.IsAdmin() || o.IsOwnedBy(actor.ID())
}

// AuthorizeStatusChange checks whether actor may move o to status.
//
// Returns:
//   - nil if the change is allowed
//   - errs.ErrForbidden if the actor may not touch the order or may not choose that status
//   - order.ErrIllegalTransition if the transition itself is not allowed
//   - a validation error if status is not a valid status
func (p OrderAccessPolicy) AuthorizeStatusChange(actor *user.User, o *order.Order, status order.Status) error {
	if err := validate(actor, o); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	if actor.IsAdmin() {
		return p.mode.Allows(o.Status(), status)
	}

	if !o.IsOwnedBy(actor.ID()) {
		return fmt.Errorf("%w: order %d belongs to another user", errs.ErrForbidden, o.ID())
	}
	if status != order.Rejected {
		return fmt.Errorf("%w: only administrators can set status %s", errs.ErrForbidden, status)
	}
	_, err := o.Status().Cancel()
	return err
}

// AuthorizeCancel checks whether actor may cancel o. The owner and administrators can
// cancel, and only PENDING orders are cancellable.
func (p OrderAccessPolicy) AuthorizeCancel(actor *user.User, o *order.Order) error {
	if err := validate(actor, o); err != nil {
		return err
	}
	if !actor.IsAdmin() && !o.IsOwnedBy(actor.ID()) {
		return fmt.Errorf("%w: order %d belongs to another user", errs.ErrForbidden, o.ID())
	}
	_, err := o.Status().Cancel()
	return err
}

// AuthorizeOrderDeletion checks whether actor may delete orders.
func (p OrderAccessPolicy) AuthorizeOrderDeletion(actor *user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only administrators can delete orders", errs.ErrForbidden)
	}
	return nil
}

// AuthorizeUserDeletion checks whether actor may delete the account targetID, given the
// orders that account owns.
//
// Parameters:
//   - actor: the authenticated user requesting the deletion
//   - targetID: the account to delete
//   - owned: orders whose owner is targetID
//
// Returns:
//   - errs.ErrForbidden if actor is neither an administrator nor the account owner
//   - ErrUserHasActiveOrders if any owned order is IN_PROGRESS
func (p OrderAccessPolicy) AuthorizeUserDeletion(actor *user.User, targetID kernel.UUID, owned []*order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.ID().IsEqual(targetID) {
		return fmt.Errorf("%w: cannot delete another user's account", errs.ErrForbidden)
	}

	for _, o := range owned {
		if o.IsOwnedBy(targetID) && o.Status() == order.InProgress {
			return fmt.Errorf("%w: order %d", ErrUserHasActiveOrders, o.ID())
		}
	}
	return nil
}

func validate(actor *user.User, o *order.Order) error {
	return errors.Join(actor.Validate(), o.Validate())
}

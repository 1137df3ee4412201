package ports

import (
	"context"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
)

// IdentityStore owns the set of registered users and enforces the identity invariants:
// at most one user per email, at most one per RUT, and the first user ever registered
// becomes the administrator.
//
// Implementations return copies; mutating a returned user does not change the store.
type IdentityStore interface {
	// Register adds u. When the store is empty u is promoted to ADMIN.
	// Returns errs.ObjectAlreadyExistsError when the email or RUT is already taken.
	Register(ctx context.Context, u *user.User) (*user.User, error)

	// Update merges the present fields of patch into the user patch.ID.
	// Returns errs.ObjectNotFoundError when the user does not exist.
	Update(ctx context.Context, patch user.Patch) (*user.User, error)

	// Remove deletes the user. Returns errs.ObjectNotFoundError when absent.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get returns the user with id or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByEmail returns the user with exactly this email, or nil.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByRut returns the user with this RUT, or nil.
	FindByRut(ctx context.Context, rut kernel.RUT) (*user.User, error)

	// List returns all users in registration order.
	List(ctx context.Context) ([]*user.User, error)
}

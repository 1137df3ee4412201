package user

import "setralog/internal/core/domain/model/kernel"

// Patch is a partial update of a User. Nil fields are left untouched; ID selects the
// target and is mandatory.
type Patch struct {
	ID              kernel.UUID
	Email           *string
	Name            *string
	RUT             *kernel.RUT
	Phone           *kernel.Phone
	Role            *Role
	Credential      *string
	BusinessName    *string
	BusinessAddress *string
	Representative  *Representative
}

// TouchesIdentityKeys reports whether the patch rewrites a uniqueness key (email or RUT).
func (p Patch) TouchesIdentityKeys() bool {
	return p.Email != nil || p.RUT != nil
}

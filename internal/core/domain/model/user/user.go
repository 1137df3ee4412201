package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User did not come from NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the aggregate root of the identity domain.
//
// Invariants held by the aggregate itself:
//   - id is a valid UUID and never changes
//   - email has a plausible shape, rut and phone are validated value objects
//   - role is one of INDIVIDUAL, BUSINESS, ADMIN
//   - credential is non-empty
type User struct {
	id         kernel.UUID
	email      string
	name       string
	rut        kernel.RUT
	phone      kernel.Phone
	role       Role
	credential string

	businessName    string
	businessAddress string
	representative  *Representative

	isConstructed bool
}

// Profile groups the descriptive fields of a user. Business fields are optional and
// only meaningful for BUSINESS accounts.
type Profile struct {
	Email           string
	Name            string
	RUT             kernel.RUT
	Phone           kernel.Phone
	BusinessName    string
	BusinessAddress string
	Representative  *Representative
}

// NewUser creates a validated User. It is also used to rehydrate users from snapshots.
//
// Example:
//
//	rut, _ := kernel.NewRUT("12.345.678-5")
//	phone, _ := kernel.NewPhone("+56912345678")
//	u, err := user.NewUser(kernel.NewUUID(), user.Profile{
//	    Email: "ana@example.cl", Name: "Ana", RUT: rut, Phone: phone,
//	}, user.Individual, hashedPassword)
func NewUser(id kernel.UUID, profile Profile, role Role, credential string) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(profile.Email),
		u.setName(profile.Name),
		u.setRUT(profile.RUT),
		u.setPhone(profile.Phone),
		u.setRole(role),
		u.setCredential(credential),
	); err != nil {
		return nil, err
	}

	u.businessName = profile.BusinessName
	u.businessAddress = profile.BusinessAddress
	if profile.Representative != nil {
		rep := *profile.Representative
		u.representative = &rep
	}

	return u, nil
}

// Validate ensures the User was built through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID     { return u.id }
func (u *User) Email() string       { return u.email }
func (u *User) Name() string        { return u.name }
func (u *User) RUT() kernel.RUT     { return u.rut }
func (u *User) Phone() kernel.Phone { return u.phone }
func (u *User) Role() Role          { return u.role }
func (u *User) IsAdmin() bool       { return u.role == Admin }

// Credential returns the stored password credential (hash or legacy plaintext).
func (u *User) Credential() string { return u.credential }

func (u *User) BusinessName() string    { return u.businessName }
func (u *User) BusinessAddress() string { return u.businessAddress }

// Representative returns a copy of the business representative, or nil.
func (u *User) Representative() *Representative {
	if u.representative == nil {
		return nil
	}
	rep := *u.representative
	return &rep
}

// Profile returns the descriptive fields as a value.
func (u *User) Profile() Profile {
	return Profile{
		Email:           u.email,
		Name:            u.name,
		RUT:             u.rut,
		Phone:           u.phone,
		BusinessName:    u.businessName,
		BusinessAddress: u.businessAddress,
		Representative:  u.Representative(),
	}
}

// PromoteToAdmin forces the ADMIN role. Used for the bootstrap rule: the first user
// registered in an empty store becomes the administrator whatever role was requested.
func (u *User) PromoteToAdmin() {
	u.role = Admin
}

// DemoteToIndividual drops a self-requested ADMIN role back to INDIVIDUAL.
func (u *User) DemoteToIndividual() {
	u.role = Individual
}

// ChangeRole sets a new role.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// ChangeCredential replaces the stored credential.
func (u *User) ChangeCredential(credential string) error {
	return u.setCredential(credential)
}

// Apply merges the non-nil fields of p into the user. Fields are validated first and
// nothing changes when any of them is invalid. The patch ID is not checked here.
func (u *User) Apply(p Patch) error {
	next := *u
	if p.Representative != nil {
		rep := *p.Representative
		next.representative = &rep
	}

	var validationErrs []error
	if p.Email != nil {
		validationErrs = append(validationErrs, next.setEmail(*p.Email))
	}
	if p.Name != nil {
		validationErrs = append(validationErrs, next.setName(*p.Name))
	}
	if p.RUT != nil {
		validationErrs = append(validationErrs, next.setRUT(*p.RUT))
	}
	if p.Phone != nil {
		validationErrs = append(validationErrs, next.setPhone(*p.Phone))
	}
	if p.Role != nil {
		validationErrs = append(validationErrs, next.setRole(*p.Role))
	}
	if p.Credential != nil {
		validationErrs = append(validationErrs, next.setCredential(*p.Credential))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	if p.BusinessName != nil {
		next.businessName = *p.BusinessName
	}
	if p.BusinessAddress != nil {
		next.businessAddress = *p.BusinessAddress
	}

	*u = next
	return nil
}

// Clone returns a deep copy so stores can hand out users without sharing state.
func (u *User) Clone() *User {
	c := *u
	c.representative = u.Representative()
	return &c
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	u.email = email
	return nil
}

// ValidateEmail checks that email is present and looks like local@domain.tld.
func ValidateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRUT(rut kernel.RUT) error {
	if err := rut.Validate(); err != nil {
		return err
	}
	u.rut = rut
	return nil
}

func (u *User) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCredential(credential string) error {
	if credential == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.credential = credential
	return nil
}

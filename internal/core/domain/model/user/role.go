package user

import (
	"fmt"

	"setralog/internal/pkg/errs"
)

// Role grants capabilities to a user. ADMIN may review and delete any order and
// manage other accounts; INDIVIDUAL and BUSINESS may only act on their own data.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Individual
	Business
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Individual:  "INDIVIDUAL",
		Business:    "BUSINESS",
		Admin:       "ADMIN",
	}
}

// ParseRole converts the wire name of a role ("INDIVIDUAL", "BUSINESS", "ADMIN").
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != Individual && r != Business && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

func (r Role) MarshalText() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

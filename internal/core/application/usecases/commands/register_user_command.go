package commands

import (
	"errors"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserInput is the raw registration form.
type RegisterUserInput struct {
	Email                  string
	Password               string
	ConfirmPassword        string
	Name                   string
	RUT                    string
	Phone                  string
	Role                   string
	BusinessName           string
	BusinessAddress        string
	BusinessRepresentative *RepresentativeInput
}

// RegisterUserCommand represents a validated account registration.
//
// Validation performed by NewRegisterUserCommand:
//   - email shape, name of at least 2 characters
//   - password rule and matching confirmation
//   - RUT check digit and Chilean mobile phone (normalized to +569XXXXXXXX)
//   - role is INDIVIDUAL, BUSINESS or ADMIN; the identity store decides whether ADMIN is kept
//   - BUSINESS accounts need businessName, businessAddress and a complete representative
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(RegisterUserInput{
//	    Email: "ana@example.cl", Password: "clave123", ConfirmPassword: "clave123",
//	    Name: "Ana", RUT: "12.345.678-5", Phone: "+56912345678", Role: "INDIVIDUAL",
//	})
//	if err != nil {
//	    return err
//	}
//	u, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	profile  user.Profile
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates in and builds the command. All field errors are
// joined so the caller can report them together.
func NewRegisterUserCommand(in RegisterUserInput) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(in.Email),
		cmd.setName(in.Name),
		cmd.setPassword(in.Password, in.ConfirmPassword),
		cmd.setRUT(in.RUT),
		cmd.setPhone(in.Phone),
		cmd.setRole(in.Role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	if err := cmd.setBusiness(in); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Profile() user.Profile {
	p := c.profile
	if c.profile.Representative != nil {
		rep := *c.profile.Representative
		p.Representative = &rep
	}
	return p
}

func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) Role() user.Role  { return c.role }

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if err := user.ValidateEmail(email); err != nil {
		return err
	}
	c.profile.Email = email
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.profile.Name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterUserCommand) setPassword(password, confirmation string) error {
	if err := validateNewPassword(password, confirmation); err != nil {
		return err
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRUT(raw string) error {
	rut, err := kernel.NewRUT(raw)
	if err != nil {
		return err
	}
	c.profile.RUT = rut
	return nil
}

func (c *RegisterUserCommand) setPhone(raw string) error {
	phone, err := kernel.NewPhone(raw)
	if err != nil {
		return err
	}
	c.profile.Phone = phone
	return nil
}

func (c *RegisterUserCommand) setRole(raw string) error {
	role, err := user.ParseRole(raw)
	if err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterUserCommand) setBusiness(in RegisterUserInput) error {
	if c.role != user.Business {
		return nil
	}

	var missing []error
	if strings.TrimSpace(in.BusinessName) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("businessName"))
	}
	if strings.TrimSpace(in.BusinessAddress) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("businessAddress"))
	}
	if in.BusinessRepresentative == nil {
		missing = append(missing, errs.NewValueIsRequiredError("businessRepresentative"))
	}
	if err := errors.Join(missing...); err != nil {
		return err
	}

	rep, err := in.BusinessRepresentative.toDomain()
	if err != nil {
		return err
	}

	c.profile.BusinessName = strings.TrimSpace(in.BusinessName)
	c.profile.BusinessAddress = strings.TrimSpace(in.BusinessAddress)
	c.profile.Representative = rep
	return nil
}

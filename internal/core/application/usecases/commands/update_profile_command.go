package commands

import (
	"errors"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileInput is a partial profile form. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name                   *string
	Email                  *string
	RUT                    *string
	Phone                  *string
	BusinessName           *string
	BusinessAddress        *string
	BusinessRepresentative *RepresentativeInput
}

// UpdateProfileCommand is a validated self-service profile change. Role and password are
// not part of the profile; they have their own commands.
//
// Example:
//
//	name := "Ana María"
//	cmd, err := NewUpdateProfileCommand(actorID, UpdateProfileInput{Name: &name})
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	patch user.Patch

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(actorID kernel.UUID, in UpdateProfileInput) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actorID),
		cmd.setName(in.Name),
		cmd.setEmail(in.Email),
		cmd.setRUT(in.RUT),
		cmd.setPhone(in.Phone),
		cmd.setRepresentative(in.BusinessRepresentative),
	); err != nil {
		return UpdateProfileCommand{}, err
	}
	cmd.patch.BusinessName = trimmed(in.BusinessName)
	cmd.patch.BusinessAddress = trimmed(in.BusinessAddress)

	return cmd, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Patch returns the change to apply to the actor's account.
func (c UpdateProfileCommand) Patch() user.Patch { return c.patch }

func (c *UpdateProfileCommand) setActor(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.patch.ID = id
	return nil
}

func (c *UpdateProfileCommand) setName(name *string) error {
	if name == nil {
		return nil
	}
	if err := validateName(*name); err != nil {
		return err
	}
	c.patch.Name = trimmed(name)
	return nil
}

func (c *UpdateProfileCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	value := strings.TrimSpace(*email)
	if err := user.ValidateEmail(value); err != nil {
		return err
	}
	c.patch.Email = &value
	return nil
}

func (c *UpdateProfileCommand) setRUT(raw *string) error {
	if raw == nil {
		return nil
	}
	rut, err := kernel.NewRUT(*raw)
	if err != nil {
		return err
	}
	c.patch.RUT = &rut
	return nil
}

func (c *UpdateProfileCommand) setPhone(raw *string) error {
	if raw == nil {
		return nil
	}
	phone, err := kernel.NewPhone(*raw)
	if err != nil {
		return err
	}
	c.patch.Phone = &phone
	return nil
}

func (c *UpdateProfileCommand) setRepresentative(in *RepresentativeInput) error {
	rep, err := in.toDomain()
	if err != nil {
		return err
	}
	c.patch.Representative = rep
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

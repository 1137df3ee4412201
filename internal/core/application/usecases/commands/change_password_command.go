package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand replaces the actor's password after checking the current one.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand requires the current password and applies the password rule
// to the new one.
func NewChangePasswordCommand(
	actorID kernel.UUID,
	currentPassword, newPassword, confirmPassword string,
) (ChangePasswordCommand, error) {
	var errCurrent error
	if currentPassword == "" {
		errCurrent = errs.NewValueIsRequiredError("currentPassword")
	}
	if err := errors.Join(
		actorID.Validate(),
		errCurrent,
		validateNewPassword(newPassword, confirmPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		actorID:         actorID,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) ActorID() kernel.UUID    { return c.actorID }
func (c ChangePasswordCommand) CurrentPassword() string { return c.currentPassword }
func (c ChangePasswordCommand) NewPassword() string     { return c.newPassword }

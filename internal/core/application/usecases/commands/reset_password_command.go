package commands

import (
	"errors"

	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand sets a new password using a reset token.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token    string
	password string

	guard guard.ConstructorGuard
}

func NewResetPasswordCommand(token, password, confirmPassword string) (ResetPasswordCommand, error) {
	var errToken error
	if token == "" {
		errToken = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(errToken, validateNewPassword(password, confirmPassword)); err != nil {
		return ResetPasswordCommand{}, err
	}
	return ResetPasswordCommand{token: token, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

func (c ResetPasswordCommand) Token() string    { return c.token }
func (c ResetPasswordCommand) Password() string { return c.password }

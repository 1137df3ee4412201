package commands

import (
	"errors"
	"strings"

	"setralog/internal/pkg/errs"
	"setralog/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand asks for a reset link for an email address.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return RequestPasswordResetCommand{}, errs.NewValueIsRequiredError("email")
	}
	return RequestPasswordResetCommand{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

func (c RequestPasswordResetCommand) Email() string { return c.email }

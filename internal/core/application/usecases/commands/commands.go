// Package commands contains the use cases that modify system state.
// Every command is built through its constructor, which validates the input, and is
// executed by a handler: handler.Handle(ctx, cmd) checks that cmd was constructed,
// authorizes the actor where needed and applies the change through the stores.
package commands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordMismatch is returned when the confirmation differs from the password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when a password breaks the password rule.
	ErrWeakPassword = errors.New(
		"password must have at least 6 characters from [A-Za-z0-9@$!%*#?&] with a letter and a digit",
	)
)

var (
	passwordAlphabet = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{6,}$`)
	passwordLetter   = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit    = regexp.MustCompile(`\d`)
)

// validateNewPassword applies the password rule and the confirmation check.
func validateNewPassword(password, confirmation string) error {
	if !passwordAlphabet.MatchString(password) ||
		!passwordLetter.MatchString(password) ||
		!passwordDigit.MatchString(password) {
		return errs.NewValueIsInvalidErrorWithCause("password", ErrWeakPassword)
	}
	if password != confirmation {
		return errs.NewValueIsInvalidErrorWithCause("confirmPassword", ErrPasswordMismatch)
	}
	return nil
}

func validateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < 2 {
		return errs.NewValueIsInvalidErrorWithCause("name", errors.New("must have at least 2 characters"))
	}
	return nil
}

// loadActor resolves the authenticated user. A token whose user was deleted is no
// longer valid.
func loadActor(ctx context.Context, identities ports.IdentityStore, actorID kernel.UUID) (*user.User, error) {
	actor, err := identities.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: user %s no longer exists", ports.ErrInvalidToken, actorID)
	}
	return actor, err
}

// RepresentativeInput is the raw business representative of a registration or profile form.
type RepresentativeInput struct {
	Name     string
	Phone    string
	Position string
}

func (r *RepresentativeInput) toDomain() (*user.Representative, error) {
	if r == nil {
		return nil, nil //nolint:nilnil // an absent representative is valid
	}
	rep, err := user.NewRepresentative(r.Name, r.Phone, r.Position)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

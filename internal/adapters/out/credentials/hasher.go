// Package credentials implements ports.CredentialHasher.
//
// BcryptHasher is the default. PlaintextHasher stores passwords as given and exists only
// to serve snapshots written by deployments that never hashed credentials.
package credentials

import (
	"crypto/subtle"
	"fmt"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Modes accepted by New.
const (
	ModeBcrypt    = "bcrypt"
	ModePlaintext = "plaintext"
)

var (
	_ ports.CredentialHasher = BcryptHasher{}
	_ ports.CredentialHasher = PlaintextHasher{}
)

// New returns the hasher for mode. Empty means bcrypt.
func New(mode string) (ports.CredentialHasher, error) {
	switch mode {
	case "", ModeBcrypt:
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	case ModePlaintext:
		return PlaintextHasher{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"credentials mode", fmt.Errorf("%q is neither bcrypt nor plaintext", mode))
	}
}

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps cost into bcrypt's accepted range.
func NewBcryptHasher(cost int) BcryptHasher {
	cost = max(bcrypt.MinCost, min(cost, bcrypt.MaxCost))
	return BcryptHasher{cost: cost}
}

func (h BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h BcryptHasher) Verify(credential, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
}

// PlaintextHasher keeps the password unchanged.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	return password, nil
}

func (PlaintextHasher) Verify(credential, password string) bool {
	return subtle.ConstantTimeCompare([]byte(credential), []byte(password)) == 1
}

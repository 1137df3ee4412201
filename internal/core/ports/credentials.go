package ports

import (
	"context"
	"errors"
	"time"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
)

// ErrInvalidToken is returned by TokenIssuer when a token is malformed, expired, signed
// with another key or issued for another purpose.
var ErrInvalidToken = errors.New("invalid or expired token")

// CredentialHasher turns a password into the stored credential and checks it back.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(credential, password string) bool
}

// AccessClaims is what an access token asserts about its bearer.
type AccessClaims struct {
	UserID    kernel.UUID
	Role      user.Role
	ExpiresAt time.Time
}

// TokenIssuer issues and verifies the session and password-reset tokens.
type TokenIssuer interface {
	IssueAccessToken(u *user.User) (string, error)
	ParseAccessToken(token string) (AccessClaims, error)
	IssueResetToken(userID kernel.UUID) (string, error)
	ParseResetToken(token string) (kernel.UUID, error)
}

// PasswordResetNotifier delivers a password reset link to a user.
type PasswordResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, email, link string) error
}

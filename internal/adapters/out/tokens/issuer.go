// Package tokens issues the HS256 JWTs used for sessions and password resets.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const (
	purposeAccess = "access"
	purposeReset  = "reset"
)

var _ ports.TokenIssuer = (*Issuer)(nil)

// Claims are the registered JWT claims plus the application fields. Purpose keeps a
// reset token from being accepted as a session and vice versa.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"userId"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
}

// Config holds the signing parameters.
type Config struct {
	Secret    string
	Issuer    string
	AccessTTL time.Duration
	ResetTTL  time.Duration

	// Now overrides time.Now, for tests.
	Now func() time.Time
}

// Issuer signs and verifies tokens with a shared secret.
type Issuer struct {
	cfg Config
	now func() time.Time
}

// NewIssuer validates cfg and returns an Issuer. Zero TTLs default to 24h for access
// tokens and 1h for reset tokens.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt: empty secret")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Issuer{cfg: cfg, now: now}, nil
}

// IssueAccessToken returns a session token for u.
func (i *Issuer) IssueAccessToken(u *user.User) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}
	return i.sign(u.ID(), u.Role().String(), purposeAccess, i.cfg.AccessTTL)
}

// ParseAccessToken verifies token and returns its claims.
func (i *Issuer) ParseAccessToken(token string) (ports.AccessClaims, error) {
	claims, err := i.parse(token, purposeAccess)
	if err != nil {
		return ports.AccessClaims{}, err
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return ports.AccessClaims{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.AccessClaims{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	return ports.AccessClaims{UserID: id, Role: role, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// IssueResetToken returns a short-lived password reset token for userID.
func (i *Issuer) IssueResetToken(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}
	return i.sign(userID, "", purposeReset, i.cfg.ResetTTL)
}

// ParseResetToken verifies a reset token and returns the user it was issued for.
func (i *Issuer) ParseResetToken(token string) (kernel.UUID, error) {
	claims, err := i.parse(token, purposeReset)
	if err != nil {
		return kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	return id, nil
}

func (i *Issuer) sign(userID kernel.UUID, role, purpose string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:  userID.String(),
		Role:    role,
		Purpose: purpose,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.Secret))
}

func (i *Issuer) parse(token, purpose string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	}
	if i.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.cfg.Issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte(i.cfg.Secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ports.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("%w: %s token used as %s token", ports.ErrInvalidToken, claims.Purpose, purpose)
	}
	return claims, nil
}

package tokens_test

import (
	"testing"
	"time"

	"setralog/internal/adapters/out/tokens"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	rut, err := kernel.NewRUT("11.111.111-1")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+56912345678")
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), user.Profile{
		Email: "ana@example.cl", Name: "Ana", RUT: rut, Phone: phone,
	}, role, "hash")
	require.NoError(t, err)
	return u
}

func TestNewIssuer_RequiresSecret(t *testing.T) {
	_, err := tokens.NewIssuer(tokens.Config{})

	require.Error(t, err)
}

func TestIssuer_AccessToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	issuer, err := tokens.NewIssuer(tokens.Config{
		Secret: "s3cret", Issuer: "setralog", AccessTTL: time.Hour,
		Now: func() time.Time { return now },
	})
	require.NoError(t, err)
	u := newUser(t, user.Business)

	token, err := issuer.IssueAccessToken(u)
	require.NoError(t, err)

	claims, err := issuer.ParseAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.UserID.IsEqual(u.ID()))
	assert.Equal(t, user.Business, claims.Role)
	assert.Equal(t, now.Add(time.Hour), claims.ExpiresAt.UTC())
}

func TestIssuer_RejectsInvalidTokens(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := now
	issuer, err := tokens.NewIssuer(tokens.Config{
		Secret: "s3cret", ResetTTL: time.Hour,
		Now: func() time.Time { return clock },
	})
	require.NoError(t, err)
	other, err := tokens.NewIssuer(tokens.Config{Secret: "other"})
	require.NoError(t, err)
	u := newUser(t, user.Individual)

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseAccessToken("not.a.token")
		require.ErrorIs(t, err, ports.ErrInvalidToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := other.IssueAccessToken(u)
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token)
		require.ErrorIs(t, err, ports.ErrInvalidToken)
	})

	t.Run("reset token is not a session", func(t *testing.T) {
		token, err := issuer.IssueResetToken(u.ID())
		require.NoError(t, err)

		_, err = issuer.ParseAccessToken(token)
		require.ErrorIs(t, err, ports.ErrInvalidToken)
	})

	t.Run("session token is not a reset token", func(t *testing.T) {
		token, err := issuer.IssueAccessToken(u)
		require.NoError(t, err)

		_, err = issuer.ParseResetToken(token)
		require.ErrorIs(t, err, ports.ErrInvalidToken)
	})

	t.Run("expired reset token", func(t *testing.T) {
		clock = now
		token, err := issuer.IssueResetToken(u.ID())
		require.NoError(t, err)

		id, err := issuer.ParseResetToken(token)
		require.NoError(t, err)
		assert.True(t, id.IsEqual(u.ID()))

		clock = now.Add(2 * time.Hour)
		_, err = issuer.ParseResetToken(token)
		require.ErrorIs(t, err, ports.ErrInvalidToken)
		clock = now
	})
}

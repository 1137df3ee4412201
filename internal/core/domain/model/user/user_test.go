package user_test

import (
	"testing"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile(t *testing.T) user.Profile {
	t.Helper()
	rut, err := kernel.NewRUT("12.345.678-5")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+56912345678")
	require.NoError(t, err)
	return user.Profile{Email: "ana@example.cl", Name: "Ana Rojas", RUT: rut, Phone: phone}
}

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, validProfile(t), user.Individual, "secret-hash")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "ana@example.cl", u.Email())
		assert.Equal(t, "12.345.678-5", u.RUT().String())
		assert.Equal(t, "+56912345678", u.Phone().String())
		assert.Equal(t, user.Individual, u.Role())
		assert.False(t, u.IsAdmin())
		assert.Nil(t, u.Representative())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		var badID kernel.UUID

		u, err := user.NewUser(badID, user.Profile{Email: "not-an-email"}, user.UnknownRole, "")

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "rut")
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "role")
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should keep business data", func(t *testing.T) {
		rep, err := user.NewRepresentative("Luis", "+56987654321", "Gerente")
		require.NoError(t, err)
		profile := validProfile(t)
		profile.BusinessName = "Transportes Sur"
		profile.BusinessAddress = "Av. Siempre Viva 123"
		profile.Representative = &rep

		u, err := user.NewUser(kernel.NewUUID(), profile, user.Business, "hash")

		require.NoError(t, err)
		assert.Equal(t, "Transportes Sur", u.BusinessName())
		assert.Equal(t, "Av. Siempre Viva 123", u.BusinessAddress())
		require.NotNil(t, u.Representative())
		assert.Equal(t, "Gerente", u.Representative().Position())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var u *user.User
		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
		assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
	})
}

func TestUser_PromoteToAdmin(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), validProfile(t), user.Business, "hash")
	require.NoError(t, err)

	u.PromoteToAdmin()

	assert.Equal(t, user.Admin, u.Role())
	assert.True(t, u.IsAdmin())
}

func TestUser_Apply(t *testing.T) {
	t.Run("should overwrite only present fields", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), validProfile(t), user.Individual, "hash")
		require.NoError(t, err)
		name := "Ana María"
		businessName := "Pyme"

		err = u.Apply(user.Patch{ID: u.ID(), Name: &name, BusinessName: &businessName})

		require.NoError(t, err)
		assert.Equal(t, "Ana María", u.Name())
		assert.Equal(t, "Pyme", u.BusinessName())
		assert.Equal(t, "ana@example.cl", u.Email())
		assert.Equal(t, "hash", u.Credential())
	})

	t.Run("should leave the user untouched on invalid input", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), validProfile(t), user.Individual, "hash")
		require.NoError(t, err)
		name := "Nuevo"
		badEmail := "nope"

		err = u.Apply(user.Patch{ID: u.ID(), Name: &name, Email: &badEmail})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Ana Rojas", u.Name())
		assert.Equal(t, "ana@example.cl", u.Email())
	})

	t.Run("should change role and credential", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), validProfile(t), user.Individual, "hash")
		require.NoError(t, err)
		role := user.Business
		credential := "new-hash"

		require.NoError(t, u.Apply(user.Patch{ID: u.ID(), Role: &role, Credential: &credential}))

		assert.Equal(t, user.Business, u.Role())
		assert.Equal(t, "new-hash", u.Credential())
	})
}

func TestUser_Clone(t *testing.T) {
	rep, err := user.NewRepresentative("Luis", "+56987654321", "Gerente")
	require.NoError(t, err)
	profile := validProfile(t)
	profile.Representative = &rep
	u, err := user.NewUser(kernel.NewUUID(), profile, user.Business, "hash")
	require.NoError(t, err)

	c := u.Clone()
	require.NoError(t, c.ChangeRole(user.Admin))

	assert.Equal(t, user.Business, u.Role())
	assert.Equal(t, user.Admin, c.Role())
	assert.Equal(t, u.Representative(), c.Representative())
}

func TestNewRepresentative(t *testing.T) {
	_, err := user.NewRepresentative("", "123", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "businessRepresentative.name")
	assert.Contains(t, err.Error(), "phone")
	assert.Contains(t, err.Error(), "businessRepresentative.position")
}

func TestPatch_TouchesIdentityKeys(t *testing.T) {
	email := "x@y.cl"
	name := "X"

	assert.True(t, user.Patch{Email: &email}.TouchesIdentityKeys())
	assert.False(t, user.Patch{Name: &name}.TouchesIdentityKeys())
}

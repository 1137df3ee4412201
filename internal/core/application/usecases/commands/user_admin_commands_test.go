package commands_test

import (
	"testing"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/domain/services"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeUserRoleCommandHandler_Handle(t *testing.T) {
	admin := newTestUser(t, "admin@example.cl", "12.345.678-5", user.Admin)
	member := newTestUser(t, "ana@example.cl", "11.111.111-1", user.Individual)

	t.Run("admin promotes another user", func(t *testing.T) {
		ctx := t.Context()
		role := user.Business
		promoted := member.Clone()
		require.NoError(t, promoted.ChangeRole(role))
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
		identities.On("Update", ctx, user.Patch{ID: member.ID(), Role: &role}).Return(promoted, nil).Once()

		cmd, err := commands.NewChangeUserRoleCommand(admin.ID(), member.ID(), "BUSINESS")
		require.NoError(t, err)
		updated, err := commands.NewChangeUserRoleCommandHandler(identities).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, user.Business, updated.Role())
		identities.AssertExpectations(t)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		ctx := t.Context()
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, member.ID()).Return(member, nil).Once()

		cmd, err := commands.NewChangeUserRoleCommand(member.ID(), admin.ID(), "INDIVIDUAL")
		require.NoError(t, err)
		_, err = commands.NewChangeUserRoleCommandHandler(identities).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		identities.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		ctx := t.Context()
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, admin.ID()).Return(admin, nil).Once()

		cmd, err := commands.NewChangeUserRoleCommand(admin.ID(), admin.ID(), "INDIVIDUAL")
		require.NoError(t, err)
		_, err = commands.NewChangeUserRoleCommandHandler(identities).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := commands.NewChangeUserRoleCommand(admin.ID(), member.ID(), "SUPERUSER")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	policy := services.NewOrderAccessPolicy(order.Permissive)
	admin := newTestUser(t, "admin@example.cl", "12.345.678-5", user.Admin)
	member := newTestUser(t, "ana@example.cl", "11.111.111-1", user.Individual)

	t.Run("admin deletes user without active orders", func(t *testing.T) {
		ctx := t.Context()
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
		identities.On("Get", ctx, member.ID()).Return(member, nil).Once()
		identities.On("Remove", ctx, member.ID()).Return(nil).Once()
		orders := new(MockOrderStore)
		orders.On("ListFor", ctx, member.ID()).
			Return([]*order.Order{newTestOrder(t, 1, member.ID(), order.Completed)}, nil).Once()

		cmd, err := commands.NewDeleteUserCommand(admin.ID(), member.ID())
		require.NoError(t, err)
		err = commands.NewDeleteUserCommandHandler(identities, orders, policy).Handle(ctx, cmd)

		require.NoError(t, err)
		identities.AssertExpectations(t)
	})

	t.Run("in progress order blocks deletion", func(t *testing.T) {
		ctx := t.Context()
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, member.ID()).Return(member, nil).Twice()
		orders := new(MockOrderStore)
		orders.On("ListFor", ctx, member.ID()).
			Return([]*order.Order{newTestOrder(t, 3, member.ID(), order.InProgress)}, nil).Once()

		cmd, err := commands.NewDeleteUserCommand(member.ID(), member.ID())
		require.NoError(t, err)
		err = commands.NewDeleteUserCommandHandler(identities, orders, policy).Handle(ctx, cmd)

		require.ErrorIs(t, err, services.ErrUserHasActiveOrders)
		identities.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("other users cannot delete", func(t *testing.T) {
		ctx := t.Context()
		other := newTestUser(t, "bob@example.cl", "7.654.321-6", user.Business)
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, other.ID()).Return(other, nil).Once()
		identities.On("Get", ctx, member.ID()).Return(member, nil).Once()
		orders := new(MockOrderStore)
		orders.On("ListFor", ctx, member.ID()).Return([]*order.Order{}, nil).Once()

		cmd, err := commands.NewDeleteUserCommand(other.ID(), member.ID())
		require.NoError(t, err)
		err = commands.NewDeleteUserCommandHandler(identities, orders, policy).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown target", func(t *testing.T) {
		ctx := t.Context()
		ghost := kernel.NewUUID()
		identities := new(MockIdentityStore)
		identities.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
		identities.On("Get", ctx, ghost).Return(nil, errs.NewObjectNotFoundError("user", ghost)).Once()

		cmd, err := commands.NewDeleteUserCommand(admin.ID(), ghost)
		require.NoError(t, err)
		err = commands.NewDeleteUserCommandHandler(identities, new(MockOrderStore), policy).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateProfileCommand(t *testing.T) {
	actorID := kernel.NewUUID()
	name := "  Ana María "
	rut := "11111111-1"

	cmd, err := commands.NewUpdateProfileCommand(actorID, commands.UpdateProfileInput{Name: &name, RUT: &rut})

	require.NoError(t, err)
	patch := cmd.Patch()
	assert.Equal(t, actorID, patch.ID)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Ana María", *patch.Name)
	require.NotNil(t, patch.RUT)
	assert.Equal(t, "11.111.111-1", patch.RUT.String())
	assert.Nil(t, patch.Email)
	assert.Nil(t, patch.Role)

	bad := "x@"
	_, err = commands.NewUpdateProfileCommand(actorID, commands.UpdateProfileInput{Email: &bad})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	member := newTestUser(t, "ana@example.cl", "11.111.111-1", user.Individual)
	name := "Ana María"
	cmd, err := commands.NewUpdateProfileCommand(member.ID(), commands.UpdateProfileInput{Name: &name})
	require.NoError(t, err)

	identities := new(MockIdentityStore)
	identities.On("Get", ctx, member.ID()).Return(member, nil).Once()
	identities.On("Update", ctx, cmd.Patch()).
		Return(nil, errs.NewObjectAlreadyExistsError("email", "ana@example.cl")).Once()

	_, err = commands.NewUpdateProfileCommandHandler(identities).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	identities.AssertExpectations(t)
}

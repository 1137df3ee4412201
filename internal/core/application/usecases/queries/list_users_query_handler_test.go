package queries_test

import (
	"testing"

	"setralog/internal/core/application/usecases/queries"
	"setralog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emails(views []queries.UserView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Email)
	}
	return out
}

func TestListUsersQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	handler := queries.NewListUsersQueryHandler(f.identities)

	list := func(t *testing.T, role, search string) []queries.UserView {
		t.Helper()
		query, err := queries.NewListUsersQuery(f.admin.ID(), role, search)
		require.NoError(t, err)
		views, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		return views
	}

	t.Run("excludes the acting admin", func(t *testing.T) {
		assert.Equal(t, []string{"ana@example.cl", "bruno@transportes.cl"}, emails(list(t, "", "")))
	})

	t.Run("role filter", func(t *testing.T) {
		assert.Equal(t, []string{"bruno@transportes.cl"}, emails(list(t, "BUSINESS", "")))
		assert.Empty(t, list(t, "ADMIN", ""))
	})

	t.Run("search over name email and rut", func(t *testing.T) {
		assert.Equal(t, []string{"ana@example.cl"}, emails(list(t, "", "PÉREZ")))
		assert.Equal(t, []string{"bruno@transportes.cl"}, emails(list(t, "", "transportes")))
		assert.Equal(t, []string{"ana@example.cl"}, emails(list(t, "", "11.111")))
		assert.Equal(t, []string{"bruno@transportes.cl"}, emails(list(t, "", "7654321")))
	})

	t.Run("views never carry credentials", func(t *testing.T) {
		views := list(t, "", "ana")
		require.Len(t, views, 1)
		assert.Equal(t, "11.111.111-1", views[0].RUT)
		assert.Equal(t, "+56912345678", views[0].Phone)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		query, err := queries.NewListUsersQuery(f.ana.ID(), "", "")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := queries.NewListUsersQuery(f.admin.ID(), "ROOT", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

package queries

import (
	"context"
	"fmt"

	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// ListUsersQueryHandler lists accounts for administrators, in registration order. The
// acting administrator is left out of the result.
type ListUsersQueryHandler struct {
	identities ports.IdentityStore
}

func NewListUsersQueryHandler(identities ports.IdentityStore) ListUsersQueryHandler {
	return ListUsersQueryHandler{identities: identities}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := resolveActor(ctx, h.identities, query.ActorID())
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can list users", errs.ErrForbidden)
	}

	users, err := h.identities.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		if u.ID().IsEqual(actor.ID()) || !query.matches(u) {
			continue
		}
		views = append(views, NewUserView(u))
	}
	return views, nil
}

package queries

import (
	"errors"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery is the administrator's user directory.
//
// Role is optional: an empty string lists every role. Search matches name, email and rut
// case-insensitively; the rut also matches without dots or dash.
//
// Example:
//
//	query, err := NewListUsersQuery(adminID, "BUSINESS", "transportes")
//	if err != nil {
//	    return err
//	}
//	users, err := handler.Handle(ctx, query)
type ListUsersQuery struct {
	actorID kernel.UUID
	role    *user.Role
	search  string

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actorID kernel.UUID, role, search string) (ListUsersQuery, error) {
	var filter *user.Role
	var errRole error
	if role = strings.TrimSpace(role); role != "" {
		parsed, err := user.ParseRole(role)
		filter, errRole = &parsed, err
	}
	if err := errors.Join(actorID.Validate(), errRole); err != nil {
		return ListUsersQuery{}, err
	}

	return ListUsersQuery{
		actorID: actorID,
		role:    filter,
		search:  strings.ToLower(strings.TrimSpace(search)),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) ActorID() kernel.UUID { return q.actorID }

func (q ListUsersQuery) matches(u *user.User) bool {
	if q.role != nil && u.Role() != *q.role {
		return false
	}
	if q.search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(u.Name()), q.search) ||
		strings.Contains(strings.ToLower(u.Email()), q.search) ||
		strings.Contains(strings.ToLower(u.RUT().String()), q.search) {
		return true
	}
	cleaned := kernel.CleanRUT(q.search)
	return cleaned != "" && strings.Contains(kernel.CleanRUT(u.RUT().String()), cleaned)
}

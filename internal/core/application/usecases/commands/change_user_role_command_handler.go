package commands

import (
	"context"
	"fmt"

	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"
)

// ChangeUserRoleCommandHandler lets administrators change the role of other accounts.
//
// Business rules:
//   - only ADMIN actors may change roles
//   - an administrator cannot change their own role, so the last administrator cannot
//     demote themselves
type ChangeUserRoleCommandHandler struct {
	identities ports.IdentityStore
}

func NewChangeUserRoleCommandHandler(identities ports.IdentityStore) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{identities: identities}
}

func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can change roles", errs.ErrForbidden)
	}
	if actor.ID().IsEqual(cmd.TargetID()) {
		return nil, fmt.Errorf("%w: administrators cannot change their own role", errs.ErrForbidden)
	}

	role := cmd.Role()
	return h.identities.Update(ctx, user.Patch{ID: cmd.TargetID(), Role: &role})
}

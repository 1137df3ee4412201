package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand is an administrator assigning a role to another account.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID
	role     user.Role

	guard guard.ConstructorGuard
}

func NewChangeUserRoleCommand(actorID, targetID kernel.UUID, role string) (ChangeUserRoleCommand, error) {
	parsed, errRole := user.ParseRole(role)
	if err := errors.Join(actorID.Validate(), targetID.Validate(), errRole); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return ChangeUserRoleCommand{
		actorID:  actorID,
		targetID: targetID,
		role:     parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) ActorID() kernel.UUID  { return c.actorID }
func (c ChangeUserRoleCommand) TargetID() kernel.UUID { return c.targetID }
func (c ChangeUserRoleCommand) Role() user.Role       { return c.role }

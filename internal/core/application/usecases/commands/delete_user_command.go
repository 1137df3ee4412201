package commands

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes an account. The actor is either an administrator or the
// account owner closing their own account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	targetID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actorID, targetID kernel.UUID) (DeleteUserCommand, error) {
	if err := errors.Join(actorID.Validate(), targetID.Validate()); err != nil {
		return DeleteUserCommand{}, err
	}
	return DeleteUserCommand{actorID: actorID, targetID: targetID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) ActorID() kernel.UUID  { return c.actorID }
func (c DeleteUserCommand) TargetID() kernel.UUID { return c.targetID }

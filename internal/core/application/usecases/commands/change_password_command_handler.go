package commands

import (
	"context"

	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
)

// ChangePasswordCommandHandler verifies the current password and stores the new
// credential. A wrong current password yields ErrInvalidCredentials.
type ChangePasswordCommandHandler struct {
	identities ports.IdentityStore
	hasher     ports.CredentialHasher
}

func NewChangePasswordCommandHandler(
	identities ports.IdentityStore,
	hasher ports.CredentialHasher,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{identities: identities, hasher: hasher}
}

func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := loadActor(ctx, h.identities, cmd.ActorID())
	if err != nil {
		return err
	}
	if !h.hasher.Verify(actor.Credential(), cmd.CurrentPassword()) {
		return ErrInvalidCredentials
	}

	credential, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	_, err = h.identities.Update(ctx, user.Patch{ID: actor.ID(), Credential: &credential})
	return err
}

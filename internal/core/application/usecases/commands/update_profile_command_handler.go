package commands

import (
	"context"

	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
)

// UpdateProfileCommandHandler applies a profile patch to the actor's own account.
// Email and RUT uniqueness is checked by the identity store.
type UpdateProfileCommandHandler struct {
	identities ports.IdentityStore
}

func NewUpdateProfileCommandHandler(identities ports.IdentityStore) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{identities: identities}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := loadActor(ctx, h.identities, cmd.Patch().ID); err != nil {
		return nil, err
	}

	return h.identities.Update(ctx, cmd.Patch())
}

package commands

import (
	"context"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
)

// RegisterUserCommandHandler creates accounts. The credential is hashed before the user
// reaches the identity store, which applies the uniqueness and bootstrap-admin rules.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(identities, hasher)
//	u, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // email or RUT already registered
//	}
type RegisterUserCommandHandler struct {
	identities ports.IdentityStore
	hasher     ports.CredentialHasher
}

func NewRegisterUserCommandHandler(
	identities ports.IdentityStore,
	hasher ports.CredentialHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		identities: identities,
		hasher:     hasher,
	}
}

// Handle registers the account and returns it as stored, including a role forced to
// ADMIN when it is the first account.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	credential, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	candidate, err := user.NewUser(kernel.NewUUID(), cmd.Profile(), cmd.Role(), credential)
	if err != nil {
		return nil, err
	}

	return h.identities.Register(ctx, candidate)
}

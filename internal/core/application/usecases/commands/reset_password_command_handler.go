package commands

import (
	"context"

	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
)

// ResetPasswordCommandHandler verifies the reset token and stores the new credential.
// Invalid or expired tokens yield ports.ErrInvalidToken.
type ResetPasswordCommandHandler struct {
	identities ports.IdentityStore
	hasher     ports.CredentialHasher
	tokens     ports.TokenIssuer
}

func NewResetPasswordCommandHandler(
	identities ports.IdentityStore,
	hasher ports.CredentialHasher,
	tokens ports.TokenIssuer,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{identities: identities, hasher: hasher, tokens: tokens}
}

func (h ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID, err := h.tokens.ParseResetToken(cmd.Token())
	if err != nil {
		return err
	}

	credential, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	_, err = h.identities.Update(ctx, user.Patch{ID: userID, Credential: &credential})
	return err
}

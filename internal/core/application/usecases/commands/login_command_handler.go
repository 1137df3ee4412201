package commands

import (
	"context"

	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"
)

// LoginResult is a signed-in session.
type LoginResult struct {
	Token string
	User  *user.User
}

// LoginCommandHandler checks credentials and issues an access token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
type LoginCommandHandler struct {
	identities ports.IdentityStore
	hasher     ports.CredentialHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(
	identities ports.IdentityStore,
	hasher ports.CredentialHasher,
	tokens ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		identities: identities,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := h.identities.FindByEmail(ctx, cmd.Email())
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil || !h.hasher.Verify(u.Credential(), cmd.Password()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.IssueAccessToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: u}, nil
}

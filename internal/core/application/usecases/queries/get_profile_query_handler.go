package queries

import (
	"context"

	"setralog/internal/core/ports"
)

type GetProfileQueryHandler struct {
	identities ports.IdentityStore
}

func NewGetProfileQueryHandler(identities ports.IdentityStore) GetProfileQueryHandler {
	return GetProfileQueryHandler{identities: identities}
}

// Handle returns ports.ErrInvalidToken when the account was deleted after the token was issued.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	actor, err := resolveActor(ctx, h.identities, query.ActorID())
	if err != nil {
		return UserView{}, err
	}
	return NewUserView(actor), nil
}

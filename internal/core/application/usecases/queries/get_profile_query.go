package queries

import (
	"errors"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery returns the account of the authenticated user.
type GetProfileQuery struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(actorID kernel.UUID) (GetProfileQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) ActorID() kernel.UUID { return q.actorID }

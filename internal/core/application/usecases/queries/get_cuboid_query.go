package queries

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrGetCuboidQueryIsNotConstructed = errors.New(
	"GetCuboidQuery must be created via NewGetCuboidQuery constructor",
)

// GetCuboidQuery fetches a single cuboid. WithBag adds the bag summary.
type GetCuboidQuery struct {
	id      kernel.ID
	withBag bool

	guard guard.ConstructorGuard
}

func NewGetCuboidQuery(id kernel.ID, withBag bool) (GetCuboidQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCuboidQuery{}, err
	}

	return GetCuboidQuery{
		id:      id,
		withBag: withBag,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCuboidQuery) Validate() error {
	return q.guard.Validate(ErrGetCuboidQueryIsNotConstructed)
}

func (q GetCuboidQuery) ID() kernel.ID {
	return q.id
}

func (q GetCuboidQuery) WithBag() bool {
	return q.withBag
}

package queries

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrGetBagQueryIsNotConstructed = errors.New(
	"GetBagQuery must be created via NewGetBagQuery constructor",
)

// GetBagQuery fetches a bag together with its cuboids.
type GetBagQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewGetBagQuery(id kernel.ID) (GetBagQuery, error) {
	if err := id.Validate(); err != nil {
		return GetBagQuery{}, err
	}

	return GetBagQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBagQuery) Validate() error {
	return q.guard.Validate(ErrGetBagQueryIsNotConstructed)
}

func (q GetBagQuery) ID() kernel.ID {
	return q.id
}

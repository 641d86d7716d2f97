package queries

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrGetBagsQueryIsNotConstructed = errors.New(
	"GetBagsQuery must be created via NewGetBagsQuery constructor",
)

// GetBagsQuery lists bag summaries. Without IDs it lists every bag.
type GetBagsQuery struct {
	ids []kernel.ID

	guard guard.ConstructorGuard
}

func NewGetBagsQuery(ids []kernel.ID) (GetBagsQuery, error) {
	if err := validateIDs(ids); err != nil {
		return GetBagsQuery{}, err
	}

	return GetBagsQuery{
		ids:   append([]kernel.ID(nil), ids...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBagsQuery) Validate() error {
	return q.guard.Validate(ErrGetBagsQueryIsNotConstructed)
}

func (q GetBagsQuery) IDs() []kernel.ID {
	return append([]kernel.ID(nil), q.ids...)
}

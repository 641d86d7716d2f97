package queries

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrGetCuboidsQueryIsNotConstructed = errors.New(
	"GetCuboidsQuery must be created via NewGetCuboidsQuery constructor",
)

// GetCuboidsQuery fetches cuboids by ID, each with a summary of its bag.
// Unknown IDs are skipped; an empty ID list yields an empty result.
//
// Example:
//
//	query, err := NewGetCuboidsQuery([]kernel.ID{kernel.MustNewID(1), kernel.MustNewID(2)})
//	if err != nil {
//	    return err
//	}
//	cuboids, err := NewGetCuboidsQueryHandler(db).Handle(ctx, query)
type GetCuboidsQuery struct {
	ids []kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCuboidsQuery(ids []kernel.ID) (GetCuboidsQuery, error) {
	if err := validateIDs(ids); err != nil {
		return GetCuboidsQuery{}, err
	}

	return GetCuboidsQuery{
		ids:   append([]kernel.ID(nil), ids...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCuboidsQuery) Validate() error {
	return q.guard.Validate(ErrGetCuboidsQueryIsNotConstructed)
}

func (q GetCuboidsQuery) IDs() []kernel.ID {
	return append([]kernel.ID(nil), q.ids...)
}

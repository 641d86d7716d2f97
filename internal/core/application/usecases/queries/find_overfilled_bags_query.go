package queries

import (
	"errors"

	"cuboids/internal/pkg/guard"
)

var ErrFindOverfilledBagsQueryIsNotConstructed = errors.New(
	"FindOverfilledBagsQuery must be created via NewFindOverfilledBagsQuery constructor",
)

// FindOverfilledBagsQuery looks for bags whose cuboids take more room than
// the bag has. Such rows can only come from writes that bypassed the
// capacity check, so the capacity audit job reports them.
type FindOverfilledBagsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindOverfilledBagsQuery() FindOverfilledBagsQuery {
	return FindOverfilledBagsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindOverfilledBagsQuery) Validate() error {
	return q.guard.Validate(ErrFindOverfilledBagsQueryIsNotConstructed)
}

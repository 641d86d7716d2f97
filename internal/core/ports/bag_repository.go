// Package ports defines repository interfaces for the bag and cuboid domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/kernel"
)

// BagRepository defines the persistence contract for bag aggregates.
// A bag returned by Get or GetForUpdate carries every cuboid stored in it.
type BagRepository interface {
	// Add persists a new bag and returns it with its assigned ID.
	Add(ctx context.Context, aggregate *bag.Bag) (*bag.Bag, error)

	// Update persists title and volume changes of an existing bag.
	// Cuboids are written through CuboidRepository.
	Update(ctx context.Context, aggregate *bag.Bag) error

	// Get retrieves a bag with its cuboids.
	// Returns errs.ObjectNotFoundError when no bag has the given ID.
	Get(ctx context.Context, id kernel.ID) (*bag.Bag, error)

	// GetForUpdate works like Get and also locks the bag row until the
	// surrounding transaction ends. Every capacity check reads the bag
	// through this method so that concurrent writers to the same bag are
	// serialized.
	//
	// Example:
	//   b, err := uow.BagRepository().GetForUpdate(ctx, bagID)
	//   if err != nil {
	//       return err
	//   }
	//   if err := policy.CheckPlacement(b, volume); err != nil {
	//       return err
	//   }
	GetForUpdate(ctx context.Context, id kernel.ID) (*bag.Bag, error)

	// Delete removes the bag row. Callers delete its cuboids first.
	Delete(ctx context.Context, id kernel.ID) error
}

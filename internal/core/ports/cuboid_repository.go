package ports

import (
	"context"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
)

// CuboidRepository defines the persistence contract for cuboids.
type CuboidRepository interface {
	// Add persists a new cuboid and returns it with its assigned ID.
	Add(ctx context.Context, c *cuboid.Cuboid) (*cuboid.Cuboid, error)

	// Update persists new dimensions of an existing cuboid.
	Update(ctx context.Context, c *cuboid.Cuboid) error

	// Get retrieves a cuboid by ID.
	// Returns errs.ObjectNotFoundError when no cuboid has the given ID.
	Get(ctx context.Context, id kernel.ID) (*cuboid.Cuboid, error)

	// Delete removes a cuboid.
	// Returns errs.ObjectNotFoundError when no cuboid has the given ID.
	Delete(ctx context.Context, id kernel.ID) error

	// DeleteByBag removes every cuboid stored in the given bag and reports
	// how many were removed.
	DeleteByBag(ctx context.Context, bagID kernel.ID) (int64, error)
}

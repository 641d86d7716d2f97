package cuboid

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

// ErrCuboidIsNotConstructed is returned when using a Cuboid that was not built
// by NewCuboid or RestoreCuboid.
var ErrCuboidIsNotConstructed = errors.New("Cuboid must be created via NewCuboid constructor")

// Cuboid is a rectangular item stored in exactly one bag.
//
// Business rules:
//   - width, height and depth are strictly positive
//   - volume is derived from the dimensions and never set directly
//   - the owning bag is fixed at creation
//
// A Cuboid returned by NewCuboid has a zero ID until the repository stores it.
type Cuboid struct {
	id         kernel.ID
	bagID      kernel.ID
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewCuboid creates a cuboid that is not stored yet.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(2, 5, 10)
//	c, err := cuboid.NewCuboid(bagID, dims)
//	if err != nil {
//	    return err
//	}
//	stored, err := repo.Add(ctx, c)
func NewCuboid(bagID kernel.ID, dimensions kernel.Dimensions) (*Cuboid, error) {
	c := &Cuboid{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setBagID(bagID), c.setDimensions(dimensions)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCuboid rebuilds a stored cuboid from persistence.
func RestoreCuboid(id, bagID kernel.ID, dimensions kernel.Dimensions) (*Cuboid, error) {
	c := &Cuboid{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setID(id), c.setBagID(bagID), c.setDimensions(dimensions)); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares cuboids by identity.
func (c *Cuboid) IsEqual(other *Cuboid) bool {
	return other != nil && !c.id.IsZero() && c.id.IsEqual(other.id)
}

func (c *Cuboid) ID() kernel.ID {
	return c.id
}

func (c *Cuboid) BagID() kernel.ID {
	return c.bagID
}

func (c *Cuboid) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c *Cuboid) Width() float64 {
	return c.dimensions.Width()
}

func (c *Cuboid) Height() float64 {
	return c.dimensions.Height()
}

func (c *Cuboid) Depth() float64 {
	return c.dimensions.Depth()
}

// Volume returns width × height × depth.
func (c *Cuboid) Volume() float64 {
	return c.dimensions.Volume()
}

// IsPersisted reports whether the cuboid has been assigned an ID.
func (c *Cuboid) IsPersisted() bool {
	return !c.id.IsZero()
}

// Resize replaces the dimensions. The capacity check is the caller's job:
// only the owning bag knows how much room is left.
func (c *Cuboid) Resize(dimensions kernel.Dimensions) error {
	return c.setDimensions(dimensions)
}

// Validate ensures the cuboid was built through a constructor.
func (c *Cuboid) Validate() error {
	if c == nil {
		return ErrCuboidIsNotConstructed
	}
	return c.guard.Validate(ErrCuboidIsNotConstructed)
}

func (c *Cuboid) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cuboid) setBagID(bagID kernel.ID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}
	c.bagID = bagID
	return nil
}

func (c *Cuboid) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	c.dimensions = dimensions
	return nil
}

// TotalVolume sums the volumes of the given cuboids. An empty or nil slice
// yields 0.
func TotalVolume(cuboids []*Cuboid) float64 {
	var total float64
	for _, c := range cuboids {
		total += c.Volume()
	}
	return total
}

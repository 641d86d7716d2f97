package bag

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"
	"cuboids/internal/pkg/guard"
)

var (
	// ErrBagIsNotConstructed is returned when using a Bag that was not built by
	// NewBag or RestoreBag.
	ErrBagIsNotConstructed = errors.New("Bag must be created via NewBag constructor")

	// ErrCuboidBelongsToAnotherBag is returned by RestoreBag when a child
	// cuboid references a different bag.
	ErrCuboidBelongsToAnotherBag = errors.New("cuboid belongs to another bag")

	// ErrVolumeBelowPayload is returned by Resize when the new volume cannot
	// hold the cuboids already in the bag.
	ErrVolumeBelowPayload = errors.New("volume is below the bag payload")
)

// Bag is a container with a fixed total volume. It is the aggregate root for
// its cuboids: a bag loaded from the repository carries every cuboid stored
// in it, which is what the capacity rule needs.
//
// Business rules:
//   - title is not blank
//   - volume is a finite number ≥ 0
//   - the cuboids collection only holds cuboids whose BagID is this bag
//
// Derived values:
//   - PayloadVolume: sum of cuboid volumes
//   - AvailableVolume: Volume − PayloadVolume (may be negative if the
//     invariant was broken by an earlier writer)
type Bag struct {
	id      kernel.ID
	title   string
	volume  float64
	cuboids []*cuboid.Cuboid

	guard guard.ConstructorGuard
}

// NewBag creates an empty bag that is not stored yet.
//
// Example:
//
//	b, err := bag.NewBag("Hiking backpack", 100)
//	if err != nil {
//	    return fmt.Errorf("invalid bag: %w", err)
//	}
func NewBag(title string, volume float64) (*Bag, error) {
	b := &Bag{
		cuboids: make([]*cuboid.Cuboid, 0),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(b.setTitle(title), b.setVolume(volume)); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBag rebuilds a stored bag together with its cuboids.
func RestoreBag(id kernel.ID, title string, volume float64, cuboids []*cuboid.Cuboid) (*Bag, error) {
	b := &Bag{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setVolume(volume),
		b.setCuboids(id, cuboids),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// IsEqual compares bags by identity.
func (b *Bag) IsEqual(other *Bag) bool {
	return other != nil && !b.id.IsZero() && b.id.IsEqual(other.id)
}

func (b *Bag) ID() kernel.ID {
	return b.id
}

func (b *Bag) Title() string {
	return b.title
}

// Volume returns the total capacity.
func (b *Bag) Volume() float64 {
	return b.volume
}

// Cuboids returns a copy of the child collection.
func (b *Bag) Cuboids() []*cuboid.Cuboid {
	out := make([]*cuboid.Cuboid, len(b.cuboids))
	copy(out, b.cuboids)
	return out
}

// Cuboid finds a child by ID.
func (b *Bag) Cuboid(id kernel.ID) (*cuboid.Cuboid, bool) {
	for _, c := range b.cuboids {
		if c.ID().IsEqual(id) {
			return c, true
		}
	}
	return nil, false
}

// PayloadVolume is the sum of the volumes of the cuboids in the bag.
func (b *Bag) PayloadVolume() float64 {
	return cuboid.TotalVolume(b.cuboids)
}

// AvailableVolume is Volume minus PayloadVolume.
func (b *Bag) AvailableVolume() float64 {
	return AvailableVolume(b.volume, b.cuboids)
}

// CanFit reports whether a cuboid of the given volume fits in the room left.
func (b *Bag) CanFit(volume float64) bool {
	return CanFit(b.AvailableVolume(), volume)
}

// Rename changes the title.
func (b *Bag) Rename(title string) error {
	return b.setTitle(title)
}

// Resize changes the total volume. Shrinking below the current payload is
// rejected with ErrVolumeBelowPayload.
func (b *Bag) Resize(volume float64) error {
	if err := validateVolume(volume); err != nil {
		return err
	}
	if !CanFit(volume, b.PayloadVolume()) {
		return ErrVolumeBelowPayload
	}
	b.volume = volume
	return nil
}

// Validate ensures the bag was built through a constructor.
func (b *Bag) Validate() error {
	if b == nil {
		return ErrBagIsNotConstructed
	}
	return b.guard.Validate(ErrBagIsNotConstructed)
}

func (b *Bag) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bag) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	b.title = title
	return nil
}

func (b *Bag) setVolume(volume float64) error {
	if err := validateVolume(volume); err != nil {
		return err
	}
	b.volume = volume
	return nil
}

func (b *Bag) setCuboids(id kernel.ID, cuboids []*cuboid.Cuboid) error {
	children := make([]*cuboid.Cuboid, 0, len(cuboids))
	for _, c := range cuboids {
		if err := c.Validate(); err != nil {
			return err
		}
		if !c.BagID().IsEqual(id) {
			return fmt.Errorf("%w: cuboid %s references bag %s", ErrCuboidBelongsToAnotherBag, c.ID(), c.BagID())
		}
		children = append(children, c)
	}
	b.cuboids = children
	return nil
}

func validateVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%v is not a finite number", volume))
	}
	if volume < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume", fmt.Errorf("%v is negative", volume))
	}
	return nil
}

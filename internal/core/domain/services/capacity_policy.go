package services

import (
	"errors"
	"fmt"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/cuboid"
)

var (
	// ErrInsufficientCapacity is returned when a cuboid does not fit in the
	// room left in its bag.
	ErrInsufficientCapacity = errors.New("insufficient capacity in bag")

	// ErrUnknownUpdateMode is returned by ParseUpdateMode.
	ErrUnknownUpdateMode = errors.New("unknown capacity update mode")
)

// UpdateMode selects how a resize of an existing cuboid is checked.
type UpdateMode string

const (
	// UpdateModeLegacy compares the new volume against the bag's available
	// volume with the cuboid's old volume still counted as occupied. Resizing
	// is therefore stricter than creating a cuboid of the same size.
	UpdateModeLegacy UpdateMode = "legacy"

	// UpdateModeExcludeSelf gives the cuboid's old volume back to the bag
	// before comparing.
	UpdateModeExcludeSelf UpdateMode = "exclude-self"
)

// ParseUpdateMode maps a configuration value to an UpdateMode. The empty
// string selects UpdateModeLegacy.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch UpdateMode(s) {
	case "", UpdateModeLegacy:
		return UpdateModeLegacy, nil
	case UpdateModeExcludeSelf:
		return UpdateModeExcludeSelf, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUpdateMode, s)
	}
}

// CapacityPolicy decides whether cuboids may be placed in or resized within a
// bag. The bag passed in must carry all of its cuboids as stored before the
// write.
//
// Example:
//
//	policy := services.NewCapacityPolicy(services.UpdateModeLegacy)
//	if err := policy.CheckPlacement(b, dims.Volume()); err != nil {
//	    return err // ErrInsufficientCapacity
//	}
type CapacityPolicy struct {
	updateMode UpdateMode
}

// NewCapacityPolicy returns a policy; an empty mode means UpdateModeLegacy.
func NewCapacityPolicy(mode UpdateMode) CapacityPolicy {
	if mode == "" {
		mode = UpdateModeLegacy
	}
	return CapacityPolicy{updateMode: mode}
}

// UpdateMode returns the configured resize mode.
func (p CapacityPolicy) UpdateMode() UpdateMode {
	return p.updateMode
}

// CheckPlacement verifies that a new cuboid of the given volume fits in b.
func (p CapacityPolicy) CheckPlacement(b *bag.Bag, volume float64) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.CanFit(volume) {
		return ErrInsufficientCapacity
	}
	return nil
}

// CheckResize verifies that target, a cuboid stored in b, may grow or shrink
// to newVolume.
func (p CapacityPolicy) CheckResize(b *bag.Bag, target *cuboid.Cuboid, newVolume float64) error {
	if err := errors.Join(b.Validate(), target.Validate()); err != nil {
		return err
	}

	available := b.AvailableVolume()
	if p.updateMode == UpdateModeExcludeSelf {
		if stored, ok := b.Cuboid(target.ID()); ok {
			available += stored.Volume()
		}
	}

	if !bag.CanFit(available, newVolume) {
		return ErrInsufficientCapacity
	}
	return nil
}

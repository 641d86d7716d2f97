package kernel

import (
	"errors"
	"fmt"
	"math"

	"cuboids/internal/pkg/errs"
	"cuboids/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating zero Dimensions.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is the width × height × depth of a cuboid. All three sides are
// strictly positive finite numbers, so Volume is always positive.
//
// Dimensions is immutable; resizing a cuboid means replacing its Dimensions.
//
// Example:
//
//	dims, err := kernel.NewDimensions(2, 5, 10)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dims.Volume()) // 100
type Dimensions struct {
	width  float64
	height float64
	depth  float64

	guard guard.ConstructorGuard
}

// NewDimensions validates every side and reports all invalid sides at once.
func NewDimensions(width, height, depth float64) (Dimensions, error) {
	if err := errors.Join(
		validateSide("width", width),
		validateSide("height", height),
		validateSide("depth", depth),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		width:  width,
		height: height,
		depth:  depth,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewDimensions panics on invalid input. Intended for fixtures.
func MustNewDimensions(width, height, depth float64) Dimensions {
	dims, err := NewDimensions(width, height, depth)
	if err != nil {
		panic(err)
	}
	return dims
}

func (d Dimensions) Width() float64 {
	return d.width
}

func (d Dimensions) Height() float64 {
	return d.height
}

func (d Dimensions) Depth() float64 {
	return d.depth
}

// Volume returns width × height × depth.
func (d Dimensions) Volume() float64 {
	return d.width * d.height * d.depth
}

// IsEqual compares the three sides.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.width == other.width && d.height == other.height && d.depth == other.depth
}

// Validate rejects Dimensions not built by NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func validateSide(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}

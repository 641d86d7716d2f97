package kernel

import (
	"fmt"
	"strconv"

	"cuboids/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating the zero ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID identifies a persisted bag or cuboid. Identifiers are assigned by the
// database, so they are always positive; the zero value marks an entity that
// has not been stored yet.
type ID struct {
	value int64
}

// NewID wraps a database identifier.
//
// Example:
//
//	id, err := kernel.NewID(5)
//	if err != nil {
//	    return fmt.Errorf("invalid cuboid id: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for trusted values such as test fixtures. It panics on
// invalid input.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal identifier.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsZero reports whether the ID was never assigned.
func (id ID) IsZero() bool {
	return id.value == 0
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate rejects the zero ID.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}

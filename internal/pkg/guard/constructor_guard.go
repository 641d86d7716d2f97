// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities. Only
// NewConstructorGuard produces a guard that validates, so a zero-value struct
// (for example `var cmd CreateCuboidCommand`) is rejected by its Validate method.
//
// Example:
//
//	type CreateBagCommand struct {
//	    title string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateBagCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateBagCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

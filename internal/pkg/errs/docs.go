// Package errs provides the typed errors shared by the domain, application
// and adapter layers.
//
// Each error type follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the details, matchable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter relies on this classification: ObjectNotFoundError turns
// into 404, invalid or missing values into 400.
package errs

// Package errs provides the typed errors shared by the food ordering domain.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The console layer uses the sentinels to tell validation problems, which are
// shown to the actor and re-prompted, apart from infrastructure failures,
// which are logged.
package errs

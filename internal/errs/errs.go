// Package errs holds the sentinel errors shared between the internal
// engines and the public vecarr package, so both sides of the module
// boundary can compare against the same values with errors.Is.
package errs

import "errors"

var (
	ErrUndefinedVector     = errors.New("vecarr: undefined vector")
	ErrIndexOutOfBounds    = errors.New("vecarr: index out of bounds")
	ErrOutOfMemory         = errors.New("vecarr: out of memory")
	ErrVectorCorrupted     = errors.New("vecarr: vector corrupted")
	ErrRaceCondition       = errors.New("vecarr: race condition")
	ErrDataSizeMismatch    = errors.New("vecarr: data size mismatch")
	ErrDestinationTooSmall = errors.New("vecarr: destination too small")
	ErrVectorEmpty         = errors.New("vecarr: vector empty")
)

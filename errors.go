package vecarr

import (
	"fmt"

	"github.com/hupe1980/vecarr/internal/errs"
)

var (
	// ErrUndefinedVector is returned when an operation targets a vector
	// that was never constructed, was already closed, or was constructed
	// with an inconsistent combination of options.
	ErrUndefinedVector = errs.ErrUndefinedVector

	// ErrIndexOutOfBounds is returned when an index falls outside the
	// range an operation accepts, and the operation was not given a
	// coercing mode (append-on-overflow).
	ErrIndexOutOfBounds = errs.ErrIndexOutOfBounds

	// ErrOutOfMemory is returned when a capacity-growing operation would
	// exceed a configured memory budget.
	ErrOutOfMemory = errs.ErrOutOfMemory

	// ErrVectorCorrupted is returned when an operation observes begin >
	// end on a vector, which should be unreachable and indicates a prior
	// bug or concurrent misuse.
	ErrVectorCorrupted = errs.ErrVectorCorrupted

	// ErrRaceCondition is returned when a caller could not obtain the
	// lock it expected at the priority it requested.
	ErrRaceCondition = errs.ErrRaceCondition

	// ErrDataSizeMismatch is wrapped by the DataSizeMismatchError that
	// CopyOut returns when the destination's length differs from the
	// requested count. Bulk operations between two vectors never return
	// it: both vectors share the element type T.
	ErrDataSizeMismatch = errs.ErrDataSizeMismatch

	// ErrDestinationTooSmall is part of the error set shared with the
	// internal packages; no operation of this package returns it. A
	// CopyOut destination of the wrong length, too small included, is
	// reported with DataSizeMismatchError.
	ErrDestinationTooSmall = errs.ErrDestinationTooSmall

	// ErrVectorEmpty is returned by operations that require at least one
	// element (Pop, PopFront) on an empty vector.
	ErrVectorEmpty = errs.ErrVectorEmpty
)

// IndexError reports the index and the live size of the vector at the
// time the offending operation was attempted, so callers can log or
// assert on the specifics without parsing the error string.
//
// The original underlying sentinel can be reached via errors.Unwrap.
type IndexError struct {
	Index int
	Size  int
	cause error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vecarr: index %d out of bounds for size %d", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return e.cause }

func newIndexError(index, size int) error {
	return &IndexError{Index: index, Size: size, cause: errs.ErrIndexOutOfBounds}
}

// DataSizeMismatchError reports the two sizes involved in a rejected
// CopyOut: Want is the requested count, Got the destination's length.
type DataSizeMismatchError struct {
	Want  int
	Got   int
	cause error
}

func (e *DataSizeMismatchError) Error() string {
	return fmt.Sprintf("vecarr: data size mismatch: want %d, got %d", e.Want, e.Got)
}

func (e *DataSizeMismatchError) Unwrap() error { return e.cause }

func newDataSizeMismatchError(want, got int) error {
	return &DataSizeMismatchError{Want: want, Got: got, cause: errs.ErrDataSizeMismatch}
}

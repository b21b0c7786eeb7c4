package vecarr

import (
	"github.com/hupe1980/vecarr/internal/budget"
	"github.com/hupe1980/vecarr/internal/container"
	"github.com/hupe1980/vecarr/internal/memutil"
)

// InsertMode controls how InsertAt handles an index past the current
// size. It is a re-export of the container package's mode so callers
// never need to import internal packages.
type InsertMode = container.InsertMode

const (
	// Strict rejects an out-of-range insertion index.
	Strict = container.Strict
	// AppendOnOverflow coerces an out-of-range insertion index down to
	// an append.
	AppendOnOverflow = container.AppendOnOverflow
)

type settings[T any] struct {
	cfg     container.Config[T]
	logger  *Logger
	metrics MetricsCollector
}

// Option configures a Vector at construction time.
type Option[T any] func(*settings[T])

// WithInitialCapacity sets the vector's starting capacity. Front and
// back headroom are split internally by the capacity engine; this only
// bounds the total.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(s *settings[T]) { s.cfg.InitialCapacity = n }
}

// WithByReference stores caller-owned handles instead of copying
// elements by value. The vector never frees or copies the pointees.
func WithByReference[T any]() Option[T] {
	return func(s *settings[T]) { s.cfg.ByReference = true }
}

// WithSecureWipe scrubs a slot's previous occupant before it is freed or
// overwritten, using WithWipeFunc's callback if one is installed, or the
// zero value of T otherwise.
func WithSecureWipe[T any]() Option[T] {
	return func(s *settings[T]) { s.cfg.SecureWipe = true }
}

// WithWipeFunc installs a custom secure-wipe callback, invoked with the
// address of the slot about to be freed or overwritten. Combining
// WithByReference and WithSecureWipe without a WithWipeFunc fails
// construction with ErrUndefinedVector: a by-reference vector cannot
// generically reach into the caller's pointee to scrub it, and this
// library never silently skips a wipe the caller asked for.
func WithWipeFunc[T any](fn func(*T)) Option[T] {
	return func(s *settings[T]) { s.cfg.WipeFn = memutil.WipeFunc[T](fn) }
}

// WithCircular fixes the vector's capacity at capacity for its whole
// lifetime; inserts wrap and overwrite via modulo indexing instead of
// growing. It also sets the initial capacity to the same value.
func WithCircular[T any](capacity int) Option[T] {
	return func(s *settings[T]) {
		s.cfg.Circular = true
		s.cfg.InitialCapacity = capacity
	}
}

// WithMemoryBudget caps the backing buffer's footprint in bytes. Growth
// that would exceed the budget fails with ErrOutOfMemory instead of
// allocating.
func WithMemoryBudget[T any](bytes int64) Option[T] {
	return func(s *settings[T]) { s.cfg.Budget = budget.New(bytes) }
}

// WithSnapshotIsolation enables full-reentrancy mode: mutations still
// shift slots in place under the lock, and after each structural
// mutation a copy of the live range is built in a fresh buffer and
// published atomically, so a reader holding a prior Snapshot of the live
// range never observes a partially-shifted state.
func WithSnapshotIsolation[T any]() Option[T] {
	return func(s *settings[T]) { s.cfg.SnapshotIsolation = true }
}

// WithTouchedTracking enables lifetime slot-occupancy tracking, surfaced
// through Vector.Stats().
func WithTouchedTracking[T any]() Option[T] {
	return func(s *settings[T]) { s.cfg.TrackTouched = true }
}

// WithLogger installs a structured logger. The default is a no-op
// logger.
func WithLogger[T any](l *Logger) Option[T] {
	return func(s *settings[T]) { s.logger = l }
}

// WithMetrics installs a metrics collector. The default is
// NoopMetricsCollector.
func WithMetrics[T any](m MetricsCollector) Option[T] {
	return func(s *settings[T]) { s.metrics = m }
}

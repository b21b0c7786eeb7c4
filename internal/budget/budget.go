// Package budget provides an optional byte ceiling that the capacity
// engine consults before committing to a larger backing buffer.
package budget

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Budget tracks how many bytes a vector's backing buffer is allowed to
// occupy. A nil *Budget, or one returned by New with a non-positive
// limit, is unlimited, mirroring the teacher's resource.Controller convention that
// a zero-valued limit disables enforcement rather than admitting
// nothing.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted
	used  int64
}

// New creates a Budget capped at limitBytes. A non-positive limitBytes
// means unlimited: TryGrow always succeeds and Release is a no-op.
func New(limitBytes int64) *Budget {
	if limitBytes <= 0 {
		return &Budget{}
	}
	return &Budget{limit: limitBytes, sem: semaphore.NewWeighted(limitBytes)}
}

// TryGrow attempts to reserve the delta in bytes between the buffer's
// current size and its proposed new size. It returns false if the
// budget is exhausted; callers must not commit the larger buffer in that
// case. Reservations are net: shrinking (a negative delta) releases
// bytes back to the budget instead.
func (b *Budget) TryGrow(deltaBytes int64) bool {
	if deltaBytes < 0 {
		b.Release(-deltaBytes)
		return true
	}
	if b == nil || b.sem == nil || deltaBytes <= 0 {
		if b != nil {
			b.used += deltaBytes
		}
		return true
	}
	if !b.sem.TryAcquire(deltaBytes) {
		return false
	}
	b.used += deltaBytes
	return true
}

// Grow reserves deltaBytes, blocking until available or ctx is done.
// Used by callers that would rather wait for headroom (e.g. another
// vector releasing its budget) than fail immediately.
func (b *Budget) Grow(ctx context.Context, deltaBytes int64) error {
	if b == nil || b.sem == nil || deltaBytes <= 0 {
		if b != nil {
			b.used += deltaBytes
		}
		return nil
	}
	if err := b.sem.Acquire(ctx, deltaBytes); err != nil {
		return err
	}
	b.used += deltaBytes
	return nil
}

// Release gives back deltaBytes previously reserved by TryGrow or Grow,
// used when a shrink reduces the buffer's footprint.
func (b *Budget) Release(deltaBytes int64) {
	if b == nil || b.sem == nil || deltaBytes <= 0 {
		if b != nil {
			b.used -= deltaBytes
		}
		return
	}
	b.sem.Release(deltaBytes)
	b.used -= deltaBytes
}

// Used reports the bytes currently reserved against this budget.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used
}

// Limit reports the configured ceiling, or 0 if unlimited.
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

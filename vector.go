// Package vecarr implements a bidirectional dynamic array: a
// homogeneous, index-addressable sequence with amortized O(1) growth at
// both ends, an optional fixed-capacity circular mode, priority-tiered
// locking for concurrent use, secure element wiping, and a by-value vs.
// by-reference storage discipline chosen at construction.
package vecarr

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/vecarr/internal/bulk"
	"github.com/hupe1980/vecarr/internal/container"
	"github.com/hupe1980/vecarr/internal/errs"
	"github.com/hupe1980/vecarr/internal/lock"
	"github.com/hupe1980/vecarr/internal/sortsearch"
)

var nextID atomic.Uint64

// Vector is a bidirectional dynamic array of T. The zero value is not
// usable; construct one with New.
type Vector[T any] struct {
	mu      *lock.PriorityMutex
	c       *container.Container[T]
	logger  *Logger
	metrics MetricsCollector
	id      uint64
	closed  bool
}

// New constructs a Vector configured by opts.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	s := settings[T]{logger: NoopLogger(), metrics: NoopMetricsCollector{}}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cfg.ByReference && s.cfg.SecureWipe && s.cfg.WipeFn == nil {
		return nil, ErrUndefinedVector
	}

	id := nextID.Add(1)
	v := &Vector[T]{
		mu:      lock.New(),
		c:       container.New(s.cfg),
		logger:  s.logger.WithID(id),
		metrics: s.metrics,
		id:      id,
	}
	return v, nil
}

// withLock admits the caller at priority, runs fn, and releases if this
// call actually became the holder (see lock.PriorityMutex). It always
// checks closed after acquiring, so a vector that was merged away or
// explicitly closed refuses every subsequent operation with
// ErrUndefinedVector, per the source's ownership-transfer contract.
func (v *Vector[T]) withLock(priority int, fn func() error) error {
	contended := v.mu.HeldPriority() != 0
	acquired := v.mu.Lock(priority)
	v.metrics.RecordLockWait(priority, contended && acquired)
	if acquired {
		defer v.mu.Unlock(priority)
	}
	if v.closed {
		return ErrUndefinedVector
	}
	return fn()
}

// Freeze acquires the vector at User priority and returns a function
// that releases it. While frozen, calls the freezing goroutine makes
// into any of the vector's Primitive- or Composite-tier methods observe
// a lower priority than the held User lock and no-op instead of
// blocking, letting the caller run a sequence of otherwise-independent
// operations as one atomic unit. The returned function must be called
// exactly once, from the same goroutine, when the sequence is done.
func (v *Vector[T]) Freeze() func() {
	v.mu.Lock(lock.User)
	return func() { v.mu.Unlock(lock.User) }
}

// trackCapacity runs fn and, if it changed either capacity half, logs
// and records the grow or shrink.
func (v *Vector[T]) trackCapacity(fn func() error) error {
	beforeL, beforeR := v.c.CapLeft(), v.c.CapRight()
	err := fn()
	afterL, afterR := v.c.CapLeft(), v.c.CapRight()
	switch {
	case afterL > beforeL:
		v.logger.LogGrow("left", beforeL, afterL)
		v.metrics.RecordGrow("left", afterL)
	case afterL < beforeL:
		v.logger.LogShrink("left", beforeL, afterL)
		v.metrics.RecordShrink("left", afterL)
	}
	switch {
	case afterR > beforeR:
		v.logger.LogGrow("right", beforeR, afterR)
		v.metrics.RecordGrow("right", afterR)
	case afterR < beforeR:
		v.logger.LogShrink("right", beforeR, afterR)
		v.metrics.RecordShrink("right", afterR)
	}
	return err
}

func indexErrOrErr(err error, i, size int) error {
	if errors.Is(err, errs.ErrIndexOutOfBounds) {
		return newIndexError(i, size)
	}
	return err
}

// Len returns the live element count.
func (v *Vector[T]) Len() int {
	var n int
	_ = v.withLock(lock.Primitive, func() error { n = v.c.Len(); return nil })
	return n
}

// Cap returns the total backing capacity (cap_left + cap_right).
func (v *Vector[T]) Cap() int {
	var n int
	_ = v.withLock(lock.Primitive, func() error { n = v.c.Cap(); return nil })
	return n
}

// Push appends value at the tail. Add is an alias for Push.
func (v *Vector[T]) Push(value T) error {
	return v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		err := v.trackCapacity(func() error { return v.c.PushBack(value) })
		v.metrics.RecordInsert(err)
		v.logger.LogInsert(size, v.c.Len(), err)
		return err
	})
}

// Add is an alias for Push, matching the source's push/add naming.
func (v *Vector[T]) Add(value T) error { return v.Push(value) }

// PushFront prepends value at the head.
func (v *Vector[T]) PushFront(value T) error {
	return v.withLock(lock.Primitive, func() error {
		err := v.trackCapacity(func() error { return v.c.PushFront(value) })
		v.metrics.RecordInsert(err)
		v.logger.LogInsert(0, v.c.Len(), err)
		return err
	})
}

// Pop removes and returns the tail element, or ErrVectorEmpty.
func (v *Vector[T]) Pop() (T, error) {
	var out T
	err := v.withLock(lock.Primitive, func() error {
		var e error
		trackErr := v.trackCapacity(func() error { out, e = v.c.PopBack(); return e })
		v.metrics.RecordRemove(trackErr)
		v.logger.LogRemove(v.c.Len(), v.c.Len(), trackErr)
		return trackErr
	})
	return out, err
}

// PopFront removes and returns the head element, or ErrVectorEmpty.
func (v *Vector[T]) PopFront() (T, error) {
	var out T
	err := v.withLock(lock.Primitive, func() error {
		var e error
		trackErr := v.trackCapacity(func() error { out, e = v.c.PopFront(); return e })
		v.metrics.RecordRemove(trackErr)
		v.logger.LogRemove(0, v.c.Len(), trackErr)
		return trackErr
	})
	return out, err
}

// Get returns the element at logical index i.
func (v *Vector[T]) Get(i int) (T, error) {
	var out T
	err := v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		if i < 0 || i >= size {
			return newIndexError(i, size)
		}
		out = v.c.At(i)
		return nil
	})
	return out, err
}

// Put overwrites the element at logical index i without changing size.
func (v *Vector[T]) Put(i int, value T) error {
	return v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		return indexErrOrErr(v.c.PutAt(i, value), i, size)
	})
}

// InsertAt inserts value at logical index i, per mode's handling of an
// out-of-range i.
func (v *Vector[T]) InsertAt(i int, value T, mode InsertMode) error {
	return v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		err := v.trackCapacity(func() error { return v.c.InsertAt(i, value, mode) })
		v.metrics.RecordInsert(err)
		v.logger.LogInsert(i, v.c.Len(), err)
		return indexErrOrErr(err, i, size)
	})
}

// RemoveAt deletes and returns the element at logical index i.
func (v *Vector[T]) RemoveAt(i int) (T, error) {
	var out T
	err := v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		var e error
		trackErr := v.trackCapacity(func() error { out, e = v.c.RemoveAt(i); return e })
		v.metrics.RecordRemove(trackErr)
		v.logger.LogRemove(i, v.c.Len(), trackErr)
		return indexErrOrErr(trackErr, i, size)
	})
	return out, err
}

// DeleteAt discards the element at logical index i without returning it.
func (v *Vector[T]) DeleteAt(i int) error {
	_, err := v.RemoveAt(i)
	return err
}

// DeleteRange discards count contiguous elements starting at logical
// index start, in a single shift.
func (v *Vector[T]) DeleteRange(start, count int) error {
	return v.withLock(lock.Primitive, func() error {
		size := v.c.Len()
		err := v.trackCapacity(func() error { return v.c.DeleteRange(start, count) })
		v.metrics.RecordRemove(err)
		return indexErrOrErr(err, start, size)
	})
}

// Swap exchanges the elements at logical indices i and j.
func (v *Vector[T]) Swap(i, j int) error {
	return v.withLock(lock.Primitive, func() error { return v.c.Swap(i, j) })
}

// SwapRange exchanges count elements starting at logical indices i and
// j, which must describe non-overlapping ranges.
func (v *Vector[T]) SwapRange(i, j, count int) error {
	return v.withLock(lock.Primitive, func() error { return v.c.SwapRange(i, j, count) })
}

// RotateLeft cyclically shifts the live range left by k.
func (v *Vector[T]) RotateLeft(k int) error {
	return v.withLock(lock.Primitive, func() error { return v.c.RotateLeft(k) })
}

// RotateRight cyclically shifts the live range right by k.
func (v *Vector[T]) RotateRight(k int) error {
	return v.withLock(lock.Primitive, func() error { return v.c.RotateRight(k) })
}

// Sort orders the live range in place according to cmp.
func (v *Vector[T]) Sort(cmp func(a, b T) int) error {
	return v.withLock(lock.Primitive, func() error {
		sortsearch.Sort(v.c, sortsearch.Cmp[T](cmp))
		v.metrics.RecordSort(v.c.Len())
		v.logger.LogSort(v.c.Len())
		return nil
	})
}

// Search performs an adaptive binary search over the live range, which
// must already be sorted according to cmp. It returns the index of a
// matching element and true, or the insertion index and false.
func (v *Vector[T]) Search(target T, cmp func(a, b T) int) (int, bool, error) {
	var idx int
	var found bool
	err := v.withLock(lock.Primitive, func() error {
		idx, found = sortsearch.Search(v.c, target, sortsearch.Cmp[T](cmp))
		return nil
	})
	return idx, found, err
}

// Apply invokes fn against the address of every live element, tail
// first, writing the (possibly mutated) result back.
func (v *Vector[T]) Apply(fn func(*T)) error {
	return v.withLock(lock.Primitive, func() error {
		bulk.Apply(v.c, fn)
		return nil
	})
}

// ApplyRange invokes fn against the address of every live element in the
// half-open range [lo, hi), forward.
func (v *Vector[T]) ApplyRange(fn func(*T), lo, hi int) error {
	return v.withLock(lock.Primitive, func() error { return bulk.ApplyRange(v.c, fn, lo, hi) })
}

// Clear empties the vector, freeing (and wiping, if enabled) every live
// element.
func (v *Vector[T]) Clear() error {
	return v.withLock(lock.Primitive, func() error {
		v.c.Clear()
		return nil
	})
}

// Shrink compresses the backing buffer toward its floors regardless of
// the automatic quarter-occupancy threshold.
func (v *Vector[T]) Shrink() error {
	return v.withLock(lock.Primitive, func() error {
		return v.trackCapacity(func() error { v.c.Shrink(); return nil })
	})
}

// CopyOut copies count live elements starting at srcOff into dst, which
// must have length exactly count.
func (v *Vector[T]) CopyOut(dst []T, srcOff, count int) error {
	return v.withLock(lock.Primitive, func() error {
		if len(dst) != count {
			return newDataSizeMismatchError(count, len(dst))
		}
		size := v.c.Len()
		if srcOff < 0 || count < 0 || srcOff+count > size {
			return newIndexError(srcOff, size)
		}
		for i := 0; i < count; i++ {
			dst[i] = v.c.At(srcOff + i)
		}
		return nil
	})
}

// Close empties and permanently invalidates the vector: every subsequent
// operation, including a second Close, fails with ErrUndefinedVector.
func (v *Vector[T]) Close() error {
	return v.withLock(lock.Primitive, func() error {
		v.c.Clear()
		v.closed = true
		return nil
	})
}

// AddOrdered inserts value at the position that keeps the live range
// ordered by cmp, which must already describe the range's current
// order.
func (v *Vector[T]) AddOrdered(value T, cmp func(a, b T) int) error {
	return v.withLock(lock.Composite, func() error {
		err := v.trackCapacity(func() error { return bulk.AddOrdered(v.c, value, sortsearch.Cmp[T](cmp)) })
		v.metrics.RecordInsert(err)
		return err
	})
}

// ApplyIf requires v.Len() <= other.Len(). For each index i < v.Len(),
// if pred(v[i], other[i]) holds, fn is invoked against the address of
// v[i] and the result written back.
//
// This only locks v (the primary target): the caller is responsible for
// ensuring other is not mutated concurrently, per the source's
// cross-vector locking contract.
func (v *Vector[T]) ApplyIf(other *Vector[T], pred func(a, b T) bool, fn func(*T)) error {
	return v.withLock(lock.Composite, func() error { return bulk.ApplyIf(v.c, other.c, pred, fn) })
}

// Copy appends the range [s2, e2) of other onto v's tail. e2 == 0 means
// "to the end of other".
func (v *Vector[T]) Copy(other *Vector[T], s2, e2 int) error {
	return v.withLock(lock.Composite, func() error {
		err := v.trackCapacity(func() error { return bulk.Copy(v.c, other.c, s2, e2) })
		v.metrics.RecordInsert(err)
		return err
	})
}

// InsertRange inserts the half-open range [s2, s2+count) of other into v
// at logical index s1.
func (v *Vector[T]) InsertRange(s1 int, other *Vector[T], s2, count int) error {
	return v.withLock(lock.Composite, func() error {
		err := v.trackCapacity(func() error { return bulk.InsertRange(v.c, s1, other.c, s2, count) })
		v.metrics.RecordInsert(err)
		return err
	})
}

// MoveRange copies the range [s2, e2) of other onto v's tail, then
// removes it from other in a single call.
func (v *Vector[T]) MoveRange(other *Vector[T], s2, e2 int) error {
	return v.withLock(lock.Composite, func() error {
		err := v.trackCapacity(func() error { return bulk.MoveRange(v.c, other.c, s2, e2) })
		v.metrics.RecordInsert(err)
		return err
	})
}

// Merge appends every live element of other onto v's tail in order, then
// permanently invalidates other: every subsequent operation on it,
// including a second Merge, fails with ErrUndefinedVector. Ownership of
// other's elements is considered transferred, so they are discarded
// without a secure-wipe pass.
func (v *Vector[T]) Merge(other *Vector[T]) error {
	return v.withLock(lock.Composite, func() error {
		if other.closed {
			return ErrUndefinedVector
		}
		err := v.trackCapacity(func() error { return bulk.Merge(v.c, other.c) })
		if err == nil {
			other.closed = true
		}
		return err
	})
}

// Stats is a point-in-time snapshot of a vector's internal state, for
// diagnostics and logging.
type Stats struct {
	Len          int
	Cap          int
	CapLeft      int
	CapRight     int
	Circular     bool
	TouchedSlots uint
	LockHeld     int
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"vecarr.Stats{len=%d cap=%d capLeft=%d capRight=%d circular=%t touched=%d lockHeld=%d}",
		s.Len, s.Cap, s.CapLeft, s.CapRight, s.Circular, s.TouchedSlots, s.LockHeld,
	)
}

// Snapshot returns a point-in-time copy of the live range. When the
// vector was constructed with WithSnapshotIsolation, this is safe to
// call without holding any lock: every structural mutation publishes a
// fresh, independently owned copy atomically, so a caller that grabs a
// Snapshot never observes a partially-shifted state, only some
// definite pre- or post-mutation layout. Without snapshot isolation,
// the copy is built directly off the live buffer and callers must
// otherwise synchronize with concurrent mutators themselves.
func (v *Vector[T]) Snapshot() []T {
	return v.c.Snapshot()
}

// Stats reports a snapshot of the vector's current geometry.
func (v *Vector[T]) Stats() Stats {
	var s Stats
	_ = v.withLock(lock.Primitive, func() error {
		s = Stats{
			Len:          v.c.Len(),
			Cap:          v.c.Cap(),
			CapLeft:      v.c.CapLeft(),
			CapRight:     v.c.CapRight(),
			Circular:     v.c.Circular(),
			TouchedSlots: v.c.TouchedCount(),
		}
		return nil
	})
	s.LockHeld = v.mu.HeldPriority()
	return s
}

// Package container implements the bidirectional dynamic-array core: the
// capacity engine (grow-left, grow-right, shrink, circular mode), the
// slot/storage discipline, and the positional state the sort/search
// engine hangs its adaptive hysteresis off of.
//
// A Container never blocks and never contends a lock — that discipline
// belongs to the vector type built on top of it. This split mirrors the
// teacher's own separation between an arena's raw block bookkeeping and
// the pool that guards concurrent access to it.
package container

import (
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/vecarr/internal/budget"
	"github.com/hupe1980/vecarr/internal/memutil"
	"github.com/hupe1980/vecarr/internal/stats"
)

// Config carries construction-time parameters for a Container. It is
// filled in by the top-level Option functions.
type Config[T any] struct {
	InitialCapacity   int
	ByReference       bool
	SecureWipe        bool
	WipeFn            memutil.WipeFunc[T]
	Circular          bool
	Budget            *budget.Budget
	TrackTouched      bool
	SnapshotIsolation bool
}

// Container is the buffer, live-range bookkeeping, and slot discipline
// backing a Vector. The field names mirror the source's cap_left,
// cap_right, begin and end.
type Container[T any] struct {
	data []T

	capLeft, capRight int
	begin, end        int
	prevEnd           int

	initCapacity int
	circular     bool
	circCursor   int // circular mode only: next logical slot a tail-push writes to

	slot   memutil.Slot[T]
	budget *budget.Budget
	touch  *stats.Touched

	snapshotIsolation bool
	snapshot          atomic.Pointer[[]T]

	// Balance and Bottom are the adaptive binary search's positional
	// memory (§ sort/search hysteresis). They live here, not in the
	// sort/search package, because they are per-container state that
	// must survive across independent Search calls.
	Balance int
	Bottom  int
}

// New builds a Container per cfg. A fresh (or cleared) non-circular
// container always starts with cap_left == 1 and begin == end == 1: the
// single left slot is deliberately treated as already exhausted, so the
// very first front-insert immediately exercises grow-left rather than
// silently using headroom the invariants say shouldn't exist yet.
//
// A circular container's total capacity is fixed at InitialCapacity for
// its whole lifetime; one slot is permanently reserved to disambiguate a
// full ring from an empty one, so its usable capacity is
// InitialCapacity-1.
func New[T any](cfg Config[T]) *Container[T] {
	initCap := cfg.InitialCapacity
	if initCap < 2 {
		initCap = 2
	}

	c := &Container[T]{
		initCapacity:      initCap,
		circular:          cfg.Circular,
		slot:              memutil.Slot[T]{ByReference: cfg.ByReference, SecureWipe: cfg.SecureWipe, WipeFn: cfg.WipeFn},
		budget:            cfg.Budget,
		snapshotIsolation: cfg.SnapshotIsolation,
	}

	if cfg.Circular {
		c.data = make([]T, initCap)
		c.capRight = initCap
		c.begin = 0
		c.end = initCap - 1
	} else {
		c.data = make([]T, initCap)
		c.capLeft = 1
		c.capRight = initCap - 1
		c.begin = 1
		c.end = 1
	}

	if cfg.TrackTouched {
		c.touch = stats.NewTouched(len(c.data))
	}
	return c
}

func elemSize[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// Len reports the live element count.
func (c *Container[T]) Len() int {
	if c.circular {
		return c.usableCap()
	}
	return c.end - c.begin
}

// Cap reports the total backing buffer length (cap_left + cap_right).
func (c *Container[T]) Cap() int {
	return c.capLeft + c.capRight
}

// CapLeft and CapRight expose the split for diagnostics and tests.
func (c *Container[T]) CapLeft() int  { return c.capLeft }
func (c *Container[T]) CapRight() int { return c.capRight }

// Circular reports whether this container is in fixed-capacity ring mode.
func (c *Container[T]) Circular() bool { return c.circular }

func (c *Container[T]) usableCap() int {
	n := c.capLeft + c.capRight - 1
	if n < 0 {
		return 0
	}
	return n
}

// TouchedCount reports how many distinct physical slots of the current
// backing buffer have been written, if touched-tracking was enabled at
// construction; zero otherwise. Marks survive growRight, which keeps
// every slot at its position; growLeft, a shrink and Clear move or drop
// the slots and start the count again from zero.
func (c *Container[T]) TouchedCount() uint {
	return c.touch.Count()
}

// physIndex maps a logical live-range index i (0-based, relative to
// begin) to its physical slot in data.
func (c *Container[T]) physIndex(i int) int {
	if c.circular {
		return i % c.usableCap()
	}
	return c.begin + i
}

// At returns the live element at logical index i without bounds
// checking; callers (sequence.go, structural.go, the public Vector) are
// responsible for validating i against Len() first.
func (c *Container[T]) At(i int) T {
	return c.data[c.physIndex(i)]
}

// SetAt overwrites the live element at logical index i in place, wiping
// the previous occupant first if secure wipe is enabled. It does not
// change size.
func (c *Container[T]) SetAt(i int, value T) {
	p := c.physIndex(i)
	if c.slot.SecureWipe {
		memutil.Wipe(&c.data[p], c.slot.WipeFn)
	}
	c.slot.Store(&c.data[p], value)
	c.mark(p)
	c.publishSnapshot()
}

func (c *Container[T]) mark(p int) {
	if c.touch != nil {
		c.touch.Mark(p)
	}
}

// publishSnapshot builds a fresh, independently owned copy of the live
// range and atomically swaps it in, when snapshot isolation is enabled.
// Every structural mutation calls this as its last step, so a reader
// that captured Snapshot() before the mutation keeps observing the
// pre-mutation slice: it owns its own backing array, untouched by the
// container's subsequent in-place shifts.
func (c *Container[T]) publishSnapshot() {
	if !c.snapshotIsolation {
		return
	}
	n := c.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = c.At(i)
	}
	c.snapshot.Store(&out)
}

// Snapshot returns a point-in-time copy of the live range. Under
// snapshot isolation this is lock-free and safe to call concurrently
// with in-flight mutations, which publish atomically. Without it, the
// caller must hold the vector's lock for the duration of the call, the
// same contract At and Len carry.
func (c *Container[T]) Snapshot() []T {
	if c.snapshotIsolation {
		if p := c.snapshot.Load(); p != nil {
			return *p
		}
		return nil
	}
	n := c.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = c.At(i)
	}
	return out
}

// clear resets a non-circular container to its post-construction empty
// state, freeing every live slot first. Circular containers ignore
// clear's size-collapsing effect since their size is fixed by
// definition; their slots are simply wiped in place.
func (c *Container[T]) clear() {
	if c.circular {
		for i := 0; i < c.usableCap(); i++ {
			c.slot.Free(&c.data[i])
		}
		c.circCursor = 0
		c.publishSnapshot()
		return
	}
	for i := c.begin; i < c.end; i++ {
		c.slot.Free(&c.data[i])
	}
	c.prevEnd = c.end
	c.data = make([]T, c.initCapacity)
	if c.touch != nil {
		c.touch = stats.NewTouched(len(c.data))
	}
	c.capLeft = 1
	c.capRight = c.initCapacity - 1
	c.begin = 1
	c.end = 1
	c.publishSnapshot()
}

// Clear empties the container. See clear for circular-mode semantics.
func (c *Container[T]) Clear() {
	c.clear()
}

// DiscardMerged resets the container to its post-construction empty
// state without invoking Free (and therefore without invoking any wipe
// callback) on any live slot. Merge uses this once every element has
// already been appended to the destination: the source's slots are
// considered transferred, not freed, so a by-reference vector's borrowed
// pointers are never touched and a secure-wipe callback never runs
// against bytes the destination now legitimately owns a copy of.
func (c *Container[T]) DiscardMerged() {
	if c.circular {
		c.circCursor = 0
		for i := range c.data {
			var zero T
			c.data[i] = zero
		}
		c.publishSnapshot()
		return
	}
	c.data = make([]T, c.initCapacity)
	if c.touch != nil {
		c.touch = stats.NewTouched(len(c.data))
	}
	c.capLeft = 1
	c.capRight = c.initCapacity - 1
	c.begin = 1
	c.end = 1
	c.publishSnapshot()
}

// growLeft doubles cap_left, reallocating and moving the live range right
// by the added left capacity, so the headroom behind end is unchanged.
// Returns false if the budget refused the additional bytes, in which
// case the container is left unchanged.
func (c *Container[T]) growLeft() bool {
	newCapLeft := c.capLeft * 2
	if newCapLeft < 1 {
		newCapLeft = 1
	}
	delta := int64(newCapLeft-c.capLeft) * elemSize[T]()
	if !c.budget.TryGrow(delta) {
		return false
	}
	size := c.end - c.begin
	newData := make([]T, newCapLeft+c.capRight)
	newBegin := c.begin + (newCapLeft - c.capLeft)
	memutil.Move(newData, newBegin, c.data, c.begin, size)
	c.data = newData
	c.begin = newBegin
	c.end = newBegin + size
	c.capLeft = newCapLeft
	if c.touch != nil {
		c.touch = stats.NewTouched(len(c.data))
	}
	return true
}

// growRight doubles cap_right in place: existing positions never move,
// so the old contents are copied verbatim into the front of the larger
// buffer.
func (c *Container[T]) growRight() bool {
	newCapRight := c.capRight * 2
	if newCapRight < 1 {
		newCapRight = 1
	}
	delta := int64(newCapRight-c.capRight) * elemSize[T]()
	if !c.budget.TryGrow(delta) {
		return false
	}
	newData := make([]T, c.capLeft+newCapRight)
	copy(newData, c.data)
	c.data = newData
	c.capRight = newCapRight
	c.touch.Grow(len(c.data))
	return true
}

// ensureFront guarantees room for one more front insertion, growing left
// if begin has run out of headroom (or the single initial left slot,
// which is treated as pre-exhausted).
func (c *Container[T]) ensureFront() bool {
	if c.begin == 0 || c.capLeft == 1 {
		return c.growLeft()
	}
	return true
}

// ensureBack guarantees room for one more back insertion, growing right
// if the buffer is exhausted.
func (c *Container[T]) ensureBack() bool {
	if c.end >= c.capLeft+c.capRight {
		return c.growRight()
	}
	return true
}

func floorAtLeast(v, a, b int) int {
	if v < a {
		v = a
	}
	if v < b {
		v = b
	}
	if v < 1 {
		v = 1
	}
	return v
}

// shrinkAfterRemoval applies the shrink rule from the capacity engine:
// once live size drops below one quarter of total capacity, halve the
// capacity on the side the removal came from, subject to the
// init_capacity/2 and size/2 floors. side is "left" or "right".
func (c *Container[T]) shrinkAfterRemoval(side string) {
	if c.circular {
		return
	}
	size := c.end - c.begin
	total := c.capLeft + c.capRight
	if total == 0 || size*4 >= total {
		return
	}
	initHalf := c.initCapacity / 2
	sizeHalf := size / 2

	switch side {
	case "left":
		newCapLeft := floorAtLeast(c.capLeft/2, initHalf, sizeHalf)
		if newCapLeft >= c.capLeft {
			return
		}
		if newCapLeft+c.capRight < size {
			newCapLeft = size - c.capRight
		}
		if newCapLeft < 1 {
			newCapLeft = 1
		}
		newData := make([]T, newCapLeft+c.capRight)
		newBegin := c.begin - (c.capLeft - newCapLeft)
		if newBegin < 0 {
			newBegin = 0
		}
		memutil.Move(newData, newBegin, c.data, c.begin, size)
		c.budget.Release(int64(c.capLeft-newCapLeft) * elemSize[T]())
		c.data = newData
		c.begin = newBegin
		c.end = newBegin + size
		c.capLeft = newCapLeft
	case "right":
		newCapRight := floorAtLeast(c.capRight/2, initHalf, sizeHalf)
		if newCapRight >= c.capRight {
			return
		}
		minRight := c.end - c.capLeft
		if newCapRight < minRight {
			newCapRight = minRight
		}
		if newCapRight < 1 {
			newCapRight = 1
		}
		newData := make([]T, c.capLeft+newCapRight)
		copy(newData, c.data[:c.capLeft+newCapRight])
		c.budget.Release(int64(c.capRight-newCapRight) * elemSize[T]())
		c.data = newData
		c.capRight = newCapRight
	}
	if c.touch != nil {
		c.touch = stats.NewTouched(len(c.data))
	}
}

// Shrink requests an explicit shrink-to-fit regardless of the quarter
// threshold, still respecting the init_capacity/2 and size/2 floors on
// both sides. It is a no-op for circular containers.
func (c *Container[T]) Shrink() {
	if c.circular {
		return
	}
	size := c.end - c.begin
	initHalf := c.initCapacity / 2
	sizeHalf := size / 2

	newCapLeft := floorAtLeast(c.begin, initHalf, sizeHalf)
	if newCapLeft > c.capLeft {
		newCapLeft = c.capLeft
	}
	newCapRight := floorAtLeast(c.capRight-(c.capLeft+c.capRight-c.end), initHalf, sizeHalf)
	if newCapRight > c.capRight {
		newCapRight = c.capRight
	}
	if newCapLeft+newCapRight < size {
		newCapRight = size - newCapLeft
	}
	if newCapLeft == c.capLeft && newCapRight == c.capRight {
		return
	}

	newData := make([]T, newCapLeft+newCapRight)
	newBegin := newCapLeft
	memutil.Move(newData, newBegin, c.data, c.begin, size)
	c.budget.Release(int64((c.capLeft+c.capRight)-(newCapLeft+newCapRight)) * elemSize[T]())
	c.data = newData
	c.begin = newBegin
	c.end = newBegin + size
	c.capLeft = newCapLeft
	c.capRight = newCapRight
	if c.touch != nil {
		c.touch = stats.NewTouched(len(c.data))
	}
}

// Package stats provides lightweight, optional introspection for a
// vector's backing buffer: which physical slots have ever been written,
// surfaced for observability the way the teacher's arena allocator
// exposes Stats()/Usage()/String().
package stats

import "github.com/bits-and-blooms/bitset"

// Touched tracks which physical slot positions in a buffer have ever
// been written to, independent of the buffer's current live range. This
// lets Vector.Stats() report lifetime utilization of the allocated
// backing array, not just its current occupancy.
type Touched struct {
	bits *bitset.BitSet
}

// NewTouched creates a Touched tracker sized for a buffer of the given
// length.
func NewTouched(capacity int) *Touched {
	if capacity < 0 {
		capacity = 0
	}
	return &Touched{bits: bitset.New(uint(capacity))}
}

// Mark records that physical slot i has been written.
func (t *Touched) Mark(i int) {
	if t == nil || i < 0 {
		return
	}
	t.bits.Set(uint(i))
}

// Count returns how many distinct physical slots have ever been marked.
func (t *Touched) Count() uint {
	if t == nil {
		return 0
	}
	return t.bits.Count()
}

// Grow resizes the tracker to a new capacity, preserving existing marks.
// Used when the backing buffer grows without moving its slots.
func (t *Touched) Grow(newCapacity int) {
	if t == nil {
		return
	}
	if newCapacity < 0 {
		newCapacity = 0
	}
	grown := bitset.New(uint(newCapacity))
	grown.InPlaceUnion(t.bits)
	t.bits = grown
}

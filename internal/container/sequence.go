package container

import (
	"github.com/hupe1980/vecarr/internal/errs"
	"github.com/hupe1980/vecarr/internal/memutil"
)

// InsertMode controls how an out-of-range index is handled by InsertAt.
type InsertMode int

const (
	// Strict rejects an index outside [0, size] with
	// errs.ErrIndexOutOfBounds.
	Strict InsertMode = iota
	// AppendOnOverflow coerces an index greater than size down to size,
	// turning an otherwise-invalid insert into an append.
	AppendOnOverflow
)

// PushBack appends value at the tail. In circular mode this overwrites
// the next slot in rotation instead of growing, per the ring buffer's
// fixed-capacity contract.
func (c *Container[T]) PushBack(value T) error {
	if c.circular {
		n := c.usableCap()
		if n == 0 {
			return errs.ErrOutOfMemory
		}
		p := c.circCursor % n
		c.slot.Free(&c.data[p])
		c.slot.Store(&c.data[p], value)
		c.mark(p)
		c.circCursor = (c.circCursor + 1) % n
		c.publishSnapshot()
		return nil
	}
	if !c.ensureBack() {
		return errs.ErrOutOfMemory
	}
	c.slot.Store(&c.data[c.end], value)
	c.mark(c.end)
	c.end++
	c.publishSnapshot()
	return nil
}

// PushFront prepends value at the head. In circular mode this rotates
// the write cursor backward and overwrites, symmetric to PushBack.
func (c *Container[T]) PushFront(value T) error {
	if c.circular {
		n := c.usableCap()
		if n == 0 {
			return errs.ErrOutOfMemory
		}
		c.circCursor = ((c.circCursor-1)%n + n) % n
		p := c.circCursor
		c.slot.Free(&c.data[p])
		c.slot.Store(&c.data[p], value)
		c.mark(p)
		c.publishSnapshot()
		return nil
	}
	if !c.ensureFront() {
		return errs.ErrOutOfMemory
	}
	c.begin--
	c.slot.Store(&c.data[c.begin], value)
	c.mark(c.begin)
	c.publishSnapshot()
	return nil
}

// PopBack removes and returns the tail element. Undefined for circular
// containers, whose size never changes: use RemoveAt or PutAt instead.
func (c *Container[T]) PopBack() (T, error) {
	var zero T
	if c.circular {
		return zero, errs.ErrIndexOutOfBounds
	}
	if c.end == c.begin {
		return zero, errs.ErrVectorEmpty
	}
	value := c.data[c.end-1]
	c.slot.Free(&c.data[c.end-1])
	c.end--
	c.shrinkAfterRemoval("right")
	c.publishSnapshot()
	return value, nil
}

// PopFront removes and returns the head element.
func (c *Container[T]) PopFront() (T, error) {
	var zero T
	if c.circular {
		return zero, errs.ErrIndexOutOfBounds
	}
	if c.end == c.begin {
		return zero, errs.ErrVectorEmpty
	}
	value := c.data[c.begin]
	c.slot.Free(&c.data[c.begin])
	c.begin++
	c.shrinkAfterRemoval("left")
	c.publishSnapshot()
	return value, nil
}

// InsertAt inserts value at logical index i, shifting whichever side
// (front or back) requires moving fewer elements. Circular containers
// have no notion of insertion growing size, so an InsertAt on one
// delegates to PutAt: the element at i is overwritten instead.
func (c *Container[T]) InsertAt(i int, value T, mode InsertMode) error {
	if c.circular {
		return c.PutAt(i, value)
	}

	size := c.end - c.begin
	if i < 0 {
		return errs.ErrIndexOutOfBounds
	}
	if i > size {
		if mode != AppendOnOverflow {
			return errs.ErrIndexOutOfBounds
		}
		i = size
	}

	switch {
	case i == size:
		return c.PushBack(value)
	case i == 0:
		return c.PushFront(value)
	case i <= size/2:
		if !c.ensureFront() {
			return errs.ErrOutOfMemory
		}
		memutil.Shift(c.data, c.begin-1, c.begin, i)
		c.begin--
		pos := c.begin + i
		c.slot.Store(&c.data[pos], value)
		c.mark(pos)
		c.publishSnapshot()
		return nil
	default:
		if !c.ensureBack() {
			return errs.ErrOutOfMemory
		}
		pos := c.begin + i
		tail := size - i
		memutil.Shift(c.data, pos+1, pos, tail)
		c.slot.Store(&c.data[pos], value)
		c.mark(pos)
		c.end++
		c.publishSnapshot()
		return nil
	}
}

// RemoveAt deletes and returns the element at logical index i, shifting
// whichever side requires moving fewer elements to close the gap. For
// circular containers, removal wipes the slot but leaves the ring's
// geometry (and size) untouched.
func (c *Container[T]) RemoveAt(i int) (T, error) {
	var zero T
	if c.circular {
		n := c.usableCap()
		if n == 0 || i < 0 {
			return zero, errs.ErrIndexOutOfBounds
		}
		p := i % n
		value := c.data[p]
		c.slot.Free(&c.data[p])
		c.mark(p)
		c.publishSnapshot()
		return value, nil
	}

	size := c.end - c.begin
	if i < 0 || i >= size {
		return zero, errs.ErrIndexOutOfBounds
	}
	pos := c.begin + i
	value := c.data[pos]

	if i <= size/2 {
		memutil.Shift(c.data, c.begin+1, c.begin, i)
		c.slot.Free(&c.data[c.begin])
		c.begin++
		c.shrinkAfterRemoval("left")
	} else {
		tail := size - i - 1
		memutil.Shift(c.data, pos, pos+1, tail)
		c.slot.Free(&c.data[c.end-1])
		c.end--
		c.shrinkAfterRemoval("right")
	}
	c.publishSnapshot()
	return value, nil
}

// DeleteAt discards the element at logical index i without returning it.
func (c *Container[T]) DeleteAt(i int) error {
	_, err := c.RemoveAt(i)
	return err
}

// DeleteRange removes count contiguous elements starting at logical
// index start in a single shift, rather than count individual RemoveAt
// calls: it frees (and wipes, if enabled) each departing slot, then
// shifts whichever side — the elements before start or the elements
// after the range — is cheaper to move.
func (c *Container[T]) DeleteRange(start, count int) error {
	if count <= 0 {
		return nil
	}
	if c.circular {
		n := c.usableCap()
		if n == 0 {
			return errs.ErrIndexOutOfBounds
		}
		for i := 0; i < count; i++ {
			p := ((start+i)%n + n) % n
			c.slot.Free(&c.data[p])
			c.mark(p)
		}
		c.publishSnapshot()
		return nil
	}

	size := c.end - c.begin
	if start < 0 || count < 0 || start+count > size {
		return errs.ErrIndexOutOfBounds
	}
	for i := 0; i < count; i++ {
		c.slot.Free(&c.data[c.begin+start+i])
	}

	frontCount := start
	backCount := size - start - count
	if frontCount <= backCount {
		memutil.Shift(c.data, c.begin+count, c.begin, frontCount)
		c.begin += count
		c.shrinkAfterRemoval("left")
	} else {
		memutil.Shift(c.data, c.begin+start, c.begin+start+count, backCount)
		c.end -= count
		c.shrinkAfterRemoval("right")
	}
	c.publishSnapshot()
	return nil
}

// PutAt overwrites the element at logical index i without changing size.
// For circular containers, i folds via modulo instead of failing on
// out-of-range values.
func (c *Container[T]) PutAt(i int, value T) error {
	if c.circular {
		n := c.usableCap()
		if n == 0 {
			return errs.ErrOutOfMemory
		}
		p := ((i % n) + n) % n
		c.slot.Free(&c.data[p])
		c.slot.Store(&c.data[p], value)
		c.mark(p)
		c.publishSnapshot()
		return nil
	}
	size := c.end - c.begin
	if i < 0 || i >= size {
		return errs.ErrIndexOutOfBounds
	}
	pos := c.begin + i
	c.slot.Free(&c.data[pos])
	c.slot.Store(&c.data[pos], value)
	c.mark(pos)
	c.publishSnapshot()
	return nil
}

package container

import "github.com/hupe1980/vecarr/internal/errs"

// Swap exchanges the elements at logical indices i and j.
func (c *Container[T]) Swap(i, j int) error {
	size := c.Len()
	if i < 0 || i >= size || j < 0 || j >= size {
		return errs.ErrIndexOutOfBounds
	}
	pi, pj := c.physIndex(i), c.physIndex(j)
	c.data[pi], c.data[pj] = c.data[pj], c.data[pi]
	c.mark(pi)
	c.mark(pj)
	c.publishSnapshot()
	return nil
}

// SwapRange exchanges count elements starting at logical indices i and j,
// which must describe non-overlapping ranges.
func (c *Container[T]) SwapRange(i, j, count int) error {
	size := c.Len()
	if count < 0 || i < 0 || j < 0 || i+count > size || j+count > size {
		return errs.ErrIndexOutOfBounds
	}
	if i < j && i+count > j {
		return errs.ErrIndexOutOfBounds
	}
	if j < i && j+count > i {
		return errs.ErrIndexOutOfBounds
	}
	for k := 0; k < count; k++ {
		pi, pj := c.physIndex(i+k), c.physIndex(j+k)
		c.data[pi], c.data[pj] = c.data[pj], c.data[pi]
		c.mark(pi)
		c.mark(pj)
	}
	c.publishSnapshot()
	return nil
}

// RotateLeft rotates the live range left by k positions: the element
// that was at logical index k becomes index 0. k==1 uses a single
// temporary and a walk of the whole range instead of the general
// three-reversal algorithm, since it is by far the most common case.
func (c *Container[T]) RotateLeft(k int) error {
	size := c.Len()
	if size == 0 {
		return nil
	}
	k = ((k % size) + size) % size
	if k == 0 {
		return nil
	}
	if k == 1 {
		p0 := c.physIndex(0)
		tmp := c.data[p0]
		for i := 0; i < size-1; i++ {
			src := c.physIndex(i + 1)
			dst := c.physIndex(i)
			c.data[dst] = c.data[src]
			c.mark(dst)
		}
		last := c.physIndex(size - 1)
		c.data[last] = tmp
		c.mark(last)
		c.publishSnapshot()
		return nil
	}
	c.reverseRange(0, k)
	c.reverseRange(k, size)
	c.reverseRange(0, size)
	c.publishSnapshot()
	return nil
}

// RotateRight rotates the live range right by k positions.
func (c *Container[T]) RotateRight(k int) error {
	size := c.Len()
	if size == 0 {
		return nil
	}
	k = ((k % size) + size) % size
	return c.RotateLeft(size - k)
}

// reverseRange reverses the logical half-open range [lo, hi).
func (c *Container[T]) reverseRange(lo, hi int) {
	for lo < hi-1 {
		pl, ph := c.physIndex(lo), c.physIndex(hi-1)
		c.data[pl], c.data[ph] = c.data[ph], c.data[pl]
		c.mark(pl)
		c.mark(ph)
		lo++
		hi--
	}
}

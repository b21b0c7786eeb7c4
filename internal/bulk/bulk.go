// Package bulk implements the batch operations that compose the
// container's primitive sequence and search operations: ordered
// insertion, apply/apply-if, cross-container copy/insert-range/move-
// range, and merge.
package bulk

import (
	"github.com/hupe1980/vecarr/internal/container"
	"github.com/hupe1980/vecarr/internal/errs"
	"github.com/hupe1980/vecarr/internal/sortsearch"
)

// AddOrdered inserts value into c's live range at the position that
// keeps it ordered by cmp. An empty container, or a value that sorts
// after the current tail, is a plain append; otherwise the insertion
// point is located with an adaptive binary search.
func AddOrdered[T any](c *container.Container[T], value T, cmp sortsearch.Cmp[T]) error {
	size := c.Len()
	if size == 0 {
		return c.PushBack(value)
	}
	if cmp(value, c.At(size-1)) > 0 {
		return c.PushBack(value)
	}
	idx, _ := sortsearch.Search(c, value, cmp)
	return c.InsertAt(idx, value, container.AppendOnOverflow)
}

// Apply invokes fn against the address of every live element, tail
// first. fn mutates through the pointer the way the source's callback
// mutates through a slot handle; the result is written back into the
// container after each call.
func Apply[T any](c *container.Container[T], fn func(*T)) {
	for i := c.Len() - 1; i >= 0; i-- {
		v := c.At(i)
		fn(&v)
		c.SetAt(i, v)
	}
}

// ApplyRange invokes fn against the address of every live element in the
// half-open range [lo, hi), in forward order.
func ApplyRange[T any](c *container.Container[T], fn func(*T), lo, hi int) error {
	size := c.Len()
	if lo < 0 || hi > size || lo > hi {
		return errs.ErrIndexOutOfBounds
	}
	for i := lo; i < hi; i++ {
		v := c.At(i)
		fn(&v)
		c.SetAt(i, v)
	}
	return nil
}

// ApplyIf requires len(v1) <= len(v2). For each index i < len(v1), if
// pred(v1[i], v2[i]) holds, fn is invoked against the address of v1[i]
// and the result written back.
func ApplyIf[T any](v1, v2 *container.Container[T], pred func(a, b T) bool, fn func(*T)) error {
	if v1.Len() > v2.Len() {
		return errs.ErrIndexOutOfBounds
	}
	for i := 0; i < v1.Len(); i++ {
		a, b := v1.At(i), v2.At(i)
		if pred(a, b) {
			fn(&a)
			v1.SetAt(i, a)
		}
	}
	return nil
}

func resolveEnd[T any](c *container.Container[T], start, end int) (int, error) {
	if end == 0 {
		end = c.Len()
	}
	if start < 0 || end > c.Len() || start > end {
		return 0, errs.ErrIndexOutOfBounds
	}
	return end, nil
}

// Copy appends the range [s2, e2) of v2 onto the tail of v1, growing
// v1's right capacity as needed. e2 == 0 means "to the end of v2".
func Copy[T any](v1, v2 *container.Container[T], s2, e2 int) error {
	end, err := resolveEnd(v2, s2, e2)
	if err != nil {
		return err
	}
	for i := s2; i < end; i++ {
		if err := v1.PushBack(v2.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// InsertRange inserts the half-open range [s2, s2+count) of v2 into v1
// at logical index s1, one element at a time, preserving order. The
// range is half-open rather than the source's inclusive [s2, s2+e2]
// pairing, which copied one extra element; count makes the span
// unambiguous.
func InsertRange[T any](v1 *container.Container[T], s1 int, v2 *container.Container[T], s2, count int) error {
	if count < 0 || s2 < 0 || s2+count > v2.Len() {
		return errs.ErrIndexOutOfBounds
	}
	for i := 0; i < count; i++ {
		if err := v1.InsertAt(s1+i, v2.At(s2+i), container.AppendOnOverflow); err != nil {
			return err
		}
	}
	return nil
}

// MoveRange copies the range [s2, e2) of v2 onto the tail of v1 (the
// same rule Copy uses, including e2 == 0 meaning "to the end"), then
// removes that range from v2 with a single DeleteRange call. The source
// deletes the range in one call rather than looping single-element
// removals over it, which — deleting forward while iterating the same
// indices — would skip every other element.
func MoveRange[T any](v1, v2 *container.Container[T], s2, e2 int) error {
	end, err := resolveEnd(v2, s2, e2)
	if err != nil {
		return err
	}
	count := end - s2
	if err := Copy(v1, v2, s2, end); err != nil {
		return err
	}
	return v2.DeleteRange(s2, count)
}

// Merge appends every live element of v2 onto the tail of v1 in order,
// then discards v2's slots without wiping them: ownership of each
// element has already transferred to v1, so v2's copies (by-value) or
// borrowed pointers (by-reference) are not freed or scrubbed a second
// time. The caller is responsible for treating v2 as undefined
// afterward.
func Merge[T any](v1, v2 *container.Container[T]) error {
	n := v2.Len()
	for i := 0; i < n; i++ {
		if err := v1.PushBack(v2.At(i)); err != nil {
			return err
		}
	}
	v2.DiscardMerged()
	return nil
}

package sortsearch

import "github.com/hupe1980/vecarr/internal/container"

// Search performs an adaptive binary search over the container's live
// range, which must already be sorted according to cmp. It returns the
// index of a matching element and true, or the insertion index that
// keeps the range sorted and false.
//
// The container remembers the last search result in Bottom and a drift
// estimate in Balance:
//
//  1. If Balance >= 32 or the range is small (size <= 64), fall back to
//     a plain binary search over the whole range — hysteresis isn't
//     worth the bookkeeping once it stops paying off.
//  2. Otherwise, starting from Bottom, expand outward in geometric
//     doubling steps (1, 2, 4, ...) in the direction indicated by
//     comparing target against the element at Bottom, until the target
//     is bracketed.
//  3. Finalize with a plain binary search within that bracket.
//  4. Update Balance to the distance the search moved from the previous
//     Bottom, and Bottom to the new result.
//
// This localizes repeated or spatially clustered searches (scanning
// nearby keys, re-querying after a small mutation) to a handful of
// probes instead of a cold O(log n) bisection every time.
func Search[T any](c *container.Container[T], target T, cmp Cmp[T]) (int, bool) {
	size := c.Len()
	if size == 0 {
		return 0, false
	}

	prevBottom := c.Bottom
	var idx int
	var found bool

	if c.Balance >= 32 || size <= 64 {
		idx, found = monobound(c, 0, size, target, cmp)
	} else {
		lo, hi := bracket(c, prevBottom, size, target, cmp)
		idx, found = monobound(c, lo, hi, target, cmp)
	}

	c.Balance = absInt(prevBottom - idx)
	c.Bottom = idx
	return idx, found
}

// monobound is a plain binary search over the half-open range [lo, hi).
func monobound[T any](c *container.Container[T], lo, hi int, target T, cmp Cmp[T]) (int, bool) {
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch d := cmp(c.At(mid), target); {
		case d == 0:
			return mid, true
		case d < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// bracket expands outward from start until target is known to lie within
// the returned half-open range, or falls back to the whole range if
// start isn't currently valid (a fresh container, or one shrunk since
// the last search).
func bracket[T any](c *container.Container[T], start, size int, target T, cmp Cmp[T]) (int, int) {
	if start < 0 || start >= size {
		return 0, size
	}
	switch d := cmp(c.At(start), target); {
	case d == 0:
		return start, start + 1
	case d < 0:
		return gallopRight(c, start, size, target, cmp)
	default:
		return gallopLeft(c, start, size, target, cmp)
	}
}

// gallopRight doubles its step size moving right from start until it
// finds an element that is not less than target, bracketing it between
// the last two probes.
func gallopRight[T any](c *container.Container[T], start, size int, target T, cmp Cmp[T]) (int, int) {
	lo, step := start, 1
	for {
		hi := lo + step
		if hi >= size {
			return lo, size
		}
		if cmp(c.At(hi), target) >= 0 {
			return lo, hi + 1
		}
		lo = hi
		step *= 2
	}
}

// gallopLeft is the mirror of gallopRight, moving left from start.
func gallopLeft[T any](c *container.Container[T], start, size int, target T, cmp Cmp[T]) (int, int) {
	hi, step := start, 1
	for {
		lo := hi - step
		if lo <= 0 {
			return 0, hi
		}
		if cmp(c.At(lo), target) <= 0 {
			return lo, hi
		}
		hi = lo
		step *= 2
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Package sortsearch implements the comparator-driven sort and adaptive
// binary search that operate directly on a container's live range
// through Swap/At, so they see the same physical-index mapping (circular
// or linear) the container itself uses.
package sortsearch

import "github.com/hupe1980/vecarr/internal/container"

// Cmp compares two elements the way a sort comparator does: negative if
// a orders before b, zero if equal, positive if a orders after b.
type Cmp[T any] func(a, b T) int

const insertionCutoff = 12

// Sort orders the container's live range in place using a three-way
// (Dutch national flag) partition quicksort. The three-way partition
// degrades gracefully on inputs with many duplicate keys, unlike a
// two-way partition which quadratic-s on them.
func Sort[T any](c *container.Container[T], cmp Cmp[T]) {
	quicksort(c, cmp, 0, c.Len())
}

func quicksort[T any](c *container.Container[T], cmp Cmp[T], lo, hi int) {
	for hi-lo > insertionCutoff {
		pivot := c.At(lo + (hi-lo)/2)
		lt, gt := lo, hi-1
		i := lo
		for i <= gt {
			switch d := cmp(c.At(i), pivot); {
			case d < 0:
				c.Swap(i, lt)
				lt++
				i++
			case d > 0:
				c.Swap(i, gt)
				gt--
			default:
				i++
			}
		}
		// Recurse into the smaller partition and loop on the larger one,
		// bounding stack depth to O(log n) regardless of pivot quality.
		if lt-lo < hi-gt-1 {
			quicksort(c, cmp, lo, lt)
			lo = gt + 1
		} else {
			quicksort(c, cmp, gt+1, hi)
			hi = lt
		}
	}
	insertionSort(c, cmp, lo, hi)
}

func insertionSort[T any](c *container.Container[T], cmp Cmp[T], lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && cmp(c.At(j-1), c.At(j)) > 0; j-- {
			c.Swap(j - 1, j)
		}
	}
}

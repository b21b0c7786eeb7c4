package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndCount(t *testing.T) {
	touched := NewTouched(8)
	touched.Mark(1)
	touched.Mark(3)
	touched.Mark(3)
	assert.EqualValues(t, 2, touched.Count())
}

func TestGrowPreservesMarks(t *testing.T) {
	touched := NewTouched(4)
	touched.Mark(0)
	touched.Mark(2)
	touched.Grow(10)
	touched.Mark(9)
	assert.EqualValues(t, 3, touched.Count())
}

func TestNilTouchedIsSafe(t *testing.T) {
	var touched *Touched
	touched.Mark(5)
	assert.EqualValues(t, 0, touched.Count())
	touched.Grow(100)
}

package memutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveCopiesBetweenDistinctBuffers(t *testing.T) {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 6)
	Move(dst, 2, src, 1, 3)
	assert.Equal(t, []int{0, 0, 2, 3, 4, 0}, dst)
}

func TestShiftHandlesOverlapOpeningAGap(t *testing.T) {
	buf := []int{1, 2, 3, 4, 0}
	Shift(buf, 2, 1, 3)
	assert.Equal(t, []int{1, 2, 2, 3, 4}, buf)
}

func TestWipeDefaultsToZeroValue(t *testing.T) {
	v := 42
	Wipe(&v, nil)
	assert.Equal(t, 0, v)
}

func TestWipeInvokesCustomCallback(t *testing.T) {
	v := 42
	var seen int
	Wipe(&v, func(item *int) { seen = *item; *item = -1 })
	assert.Equal(t, 42, seen)
	assert.Equal(t, -1, v)
}

func TestSlotFreeWithoutSecureWipeStillZeroes(t *testing.T) {
	s := Slot[int]{}
	v := 7
	s.Free(&v)
	assert.Equal(t, 0, v)
}

func TestSlotFreeWithSecureWipeUsesCallback(t *testing.T) {
	called := false
	s := Slot[int]{SecureWipe: true, WipeFn: func(item *int) { called = true; *item = -9 }}
	v := 7
	s.Free(&v)
	assert.True(t, called)
	assert.Equal(t, -9, v)
}

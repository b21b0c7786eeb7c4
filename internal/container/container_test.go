package container

import (
	"testing"

	"github.com/hupe1980/vecarr/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCentersAtOneOneOne(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	assert.Equal(t, 1, c.capLeft)
	assert.Equal(t, 1, c.begin)
	assert.Equal(t, 1, c.end)
	assert.Equal(t, 0, c.Len())
}

func TestPushPopBack(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	require.NoError(t, c.PushBack(1))
	require.NoError(t, c.PushBack(2))
	require.NoError(t, c.PushBack(3))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.At(0))
	assert.Equal(t, 2, c.At(1))
	assert.Equal(t, 3, c.At(2))

	v, err := c.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = c.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, c.Len())
}

func TestPushFrontGrowsCapLeftAndReversesOrder(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 4})
	for i := 1; i <= 6; i++ {
		require.NoError(t, c.PushFront(i))
	}
	assert.Equal(t, 6, c.Len())
	assert.GreaterOrEqual(t, c.Cap(), 6)
	assert.Greater(t, c.CapLeft(), 1)

	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, got)
}

func TestPopFromEmptyFails(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 4})
	_, err := c.PopBack()
	assert.Error(t, err)
	_, err = c.PopFront()
	assert.Error(t, err)
}

func TestInsertAtMiddleChoosesCheaperSide(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for i := 0; i < 6; i++ {
		require.NoError(t, c.PushBack(i))
	}
	require.NoError(t, c.InsertAt(1, 99, Strict))

	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{0, 99, 1, 2, 3, 4, 5}, got)
}

func TestInsertAtOutOfRangeStrictFails(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	require.NoError(t, c.PushBack(1))
	err := c.InsertAt(5, 2, Strict)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
}

func TestInsertAtAppendOnOverflowCoerces(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	require.NoError(t, c.PushBack(1))
	require.NoError(t, c.InsertAt(50, 2, AppendOnOverflow))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.At(1))
}

func TestRemoveAtClosesGapFromCheaperSide(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for i := 0; i < 5; i++ {
		require.NoError(t, c.PushBack(i))
	}
	v, err := c.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{0, 2, 3, 4}, got)
}

func TestShrinkAfterRemovalRespectsFloors(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for i := 0; i < 20; i++ {
		require.NoError(t, c.PushBack(i))
	}
	bigCap := c.Cap()
	for i := 0; i < 18; i++ {
		_, err := c.PopBack()
		require.NoError(t, err)
	}
	assert.Less(t, c.Cap(), bigCap)
	assert.GreaterOrEqual(t, c.CapLeft()+c.CapRight(), c.initCapacity/2)
}

func TestCircularOverwritesInRotation(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 4, Circular: true})
	assert.Equal(t, 3, c.Len())

	for _, v := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, c.PushBack(v))
	}
	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{4, 5, 3}, got)
	assert.Equal(t, 3, c.Len())
}

func TestCircularRemoveIsGeometryNoop(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 4, Circular: true})
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, c.PushBack(v))
	}
	before := c.Len()
	_, err := c.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, before, c.Len())
}

func TestClearResetsToCenteredEmpty(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for i := 0; i < 5; i++ {
		require.NoError(t, c.PushBack(i))
	}
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, c.begin, c.end)
	assert.Equal(t, 1, c.begin)
}

func TestSwapAndRotate(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for _, v := range []int{1, 2, 3, 4} {
		require.NoError(t, c.PushBack(v))
	}
	require.NoError(t, c.Swap(0, 3))
	assert.Equal(t, 4, c.At(0))
	assert.Equal(t, 1, c.At(3))

	require.NoError(t, c.RotateLeft(1))
	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{2, 3, 1, 4}, got)

	require.NoError(t, c.RotateRight(1))
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{4, 2, 3, 1}, got)
}

func TestRotateLeftThenRightIsIdentity(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7} {
		require.NoError(t, c.PushBack(v))
	}
	require.NoError(t, c.RotateLeft(3))
	require.NoError(t, c.RotateRight(3))

	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
}

func TestDeleteRangeSingleShift(t *testing.T) {
	c := New(Config[int]{InitialCapacity: 8})
	for _, v := range []int{0, 1, 2, 3, 4, 5} {
		require.NoError(t, c.PushBack(v))
	}
	require.NoError(t, c.DeleteRange(1, 3))
	got := make([]int, c.Len())
	for i := range got {
		got[i] = c.At(i)
	}
	assert.Equal(t, []int{0, 4, 5}, got)
}

func TestByReferenceDeleteLeavesPointeesAlone(t *testing.T) {
	type widget struct{ n int }
	p1, p2, p3 := &widget{1}, &widget{2}, &widget{3}
	c := New(Config[*widget]{InitialCapacity: 8, ByReference: true})
	require.NoError(t, c.PushBack(p1))
	require.NoError(t, c.PushBack(p2))
	require.NoError(t, c.PushBack(p3))

	require.NoError(t, c.DeleteAt(1))
	assert.Equal(t, 2, c.Len())
	assert.Same(t, p1, c.At(0))
	assert.Same(t, p3, c.At(1))
	assert.Equal(t, 2, p2.n)
}

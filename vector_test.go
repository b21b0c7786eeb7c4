package vecarr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func ascending(a, b int) int { return a - b }

// Scenario 1: push/pop round trip on a fresh by-value vector.
func TestScenarioPushPop(t *testing.T) {
	v, err := New[int](WithInitialCapacity[int](8))
	require.NoError(t, err)

	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))
	require.NoError(t, v.Push(3))
	assert.Equal(t, 3, v.Len())

	got0, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got0)
	got1, _ := v.Get(1)
	assert.Equal(t, 2, got1)
	got2, _ := v.Get(2)
	assert.Equal(t, 3, got2)

	popped, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, popped)

	popped, err = v.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, popped)

	assert.Equal(t, 1, v.Len())
}

// Scenario 2: repeated front-insertion reverses order and grows cap_left.
func TestScenarioFrontInsertReversesOrder(t *testing.T) {
	v, err := New[int](WithInitialCapacity[int](4))
	require.NoError(t, err)

	for i := 1; i <= 6; i++ {
		require.NoError(t, v.PushFront(i))
	}
	assert.Equal(t, 6, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 6)

	got := make([]int, v.Len())
	for i := range got {
		got[i], _ = v.Get(i)
	}
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, got)
}

// Scenario 3: sort then adaptive binary search.
func TestScenarioSortAndSearch(t *testing.T) {
	v, err := New[int](WithInitialCapacity[int](8))
	require.NoError(t, err)

	for _, n := range []int{5, 2, 8, 1, 9, 3} {
		require.NoError(t, v.Push(n))
	}
	require.NoError(t, v.Sort(ascending))

	got := make([]int, v.Len())
	for i := range got {
		got[i], _ = v.Get(i)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)

	idx, found, err := v.Search(8, ascending)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, idx)

	idx, found, err = v.Search(4, ascending)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 3, idx)
}

// Scenario 4: by-reference vector, delete leaves pointees untouched.
func TestScenarioByReferenceDelete(t *testing.T) {
	type widget struct{ n int }
	p1, p2, p3 := &widget{1}, &widget{2}, &widget{3}

	v, err := New[*widget](WithByReference[*widget]())
	require.NoError(t, err)

	require.NoError(t, v.Push(p1))
	require.NoError(t, v.Push(p2))
	require.NoError(t, v.Push(p3))

	require.NoError(t, v.DeleteAt(1))
	assert.Equal(t, 2, v.Len())

	got0, _ := v.Get(0)
	got1, _ := v.Get(1)
	assert.Same(t, p1, got0)
	assert.Same(t, p3, got1)
	assert.Equal(t, 2, p2.n)
}

// Scenario 5: circular vector overwrite in rotation.
func TestScenarioCircularOverwrite(t *testing.T) {
	v, err := New[string](WithCircular[string](4))
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, v.Push(s))
		assert.Equal(t, 3, v.Len())
	}

	got := make([]string, v.Len())
	for i := range got {
		got[i], _ = v.Get(i)
	}
	assert.Equal(t, []string{"d", "e", "c"}, got)
}

// Scenario 6: merge concatenates and permanently invalidates the source.
func TestScenarioMergeInvalidatesSource(t *testing.T) {
	v1, err := New[int]()
	require.NoError(t, err)
	v2, err := New[int]()
	require.NoError(t, err)

	for _, n := range []int{1, 2, 3} {
		require.NoError(t, v1.Push(n))
	}
	for _, n := range []int{4, 5, 6} {
		require.NoError(t, v2.Push(n))
	}

	require.NoError(t, v1.Merge(v2))
	got := make([]int, v1.Len())
	for i := range got {
		got[i], _ = v1.Get(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)

	_, err = v2.Get(0)
	assert.ErrorIs(t, err, ErrUndefinedVector)
	err = v2.Push(99)
	assert.ErrorIs(t, err, ErrUndefinedVector)
}

func TestRoundTripPutGet(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	for i := 0; i < 10; i++ {
		require.NoError(t, v.Push(i))
	}
	for i := 0; i < v.Len(); i++ {
		require.NoError(t, v.Put(i, i*100))
		got, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*100, got)
	}
}

func TestRoundTripAddFrontRemoveFront(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))
	sizeBefore := v.Len()

	require.NoError(t, v.PushFront(42))
	got, err := v.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, sizeBefore, v.Len())
}

func TestIndexErrorCarriesContext(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](4))
	require.NoError(t, v.Push(1))

	_, err := v.Get(5)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 5, idxErr.Index)
	assert.Equal(t, 1, idxErr.Size)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestByReferenceSecureWipeWithoutWipeFuncFailsConstruction(t *testing.T) {
	type widget struct{ n int }
	_, err := New[*widget](WithByReference[*widget](), WithSecureWipe[*widget]())
	assert.ErrorIs(t, err, ErrUndefinedVector)
}

func TestSecureWipeZeroesRemovedByValueSlot(t *testing.T) {
	v, err := New[int](WithSecureWipe[int]())
	require.NoError(t, err)
	require.NoError(t, v.Push(7))
	popped, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, popped)
}

func TestCopyOutDataSizeMismatch(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(i))
	}
	dst := make([]int, 2)
	err := v.CopyOut(dst, 0, 3)
	var mismatchErr *DataSizeMismatchError
	require.True(t, errors.As(err, &mismatchErr))
}

func TestCopyOutSucceeds(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(i))
	}
	dst := make([]int, 3)
	require.NoError(t, v.CopyOut(dst, 1, 3))
	assert.Equal(t, []int{1, 2, 3}, dst)
}

func TestFreezeAdmitsNestedPrimitiveCallsWithoutBlocking(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	unfreeze := v.Freeze()

	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))
	got, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	unfreeze()
	assert.Equal(t, 0, v.Stats().LockHeld)
}

func TestConcurrentPushesAllSucceed(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error { return v.Push(1) })
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 100, v.Len())
}

func TestSnapshotIsolationNeverObservesPartialShift(t *testing.T) {
	v, err := New[int](WithInitialCapacity[int](4), WithSnapshotIsolation[int]())
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		require.NoError(t, v.Push(i))
	}

	stop := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		for i := 8; i < 200; i++ {
			select {
			case <-stop:
				return nil
			default:
			}
			if err := v.Push(i); err != nil {
				return err
			}
			if _, err := v.PopFront(); err != nil {
				return err
			}
		}
		return nil
	})

	for i := 0; i < 500; i++ {
		snap := v.Snapshot()
		for j := 1; j < len(snap); j++ {
			assert.Less(t, snap[j-1], snap[j], "snapshot must reflect a coherent pre- or post-mutation ordering, never a torn shift")
		}
	}
	close(stop)
	require.NoError(t, g.Wait())
}

func TestSnapshotIsCopyNotAliasOfLiveBuffer(t *testing.T) {
	v, err := New[int](WithSnapshotIsolation[int]())
	require.NoError(t, err)
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))

	snap := v.Snapshot()
	require.NoError(t, v.Push(3))

	assert.Equal(t, []int{1, 2}, snap)
	assert.Equal(t, 3, v.Len())
}

func TestAddOrderedComposite(t *testing.T) {
	v, _ := New[int](WithInitialCapacity[int](8))
	for _, n := range []int{1, 3, 5, 7} {
		require.NoError(t, v.Push(n))
	}
	require.NoError(t, v.AddOrdered(4, ascending))

	got := make([]int, v.Len())
	for i := range got {
		got[i], _ = v.Get(i)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7}, got)
}

func TestMoveRangeBetweenVectors(t *testing.T) {
	v1, _ := New[int]()
	v2, _ := New[int]()
	for _, n := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, v2.Push(n))
	}
	require.NoError(t, v1.MoveRange(v2, 1, 4))

	got1 := make([]int, v1.Len())
	for i := range got1 {
		got1[i], _ = v1.Get(i)
	}
	got2 := make([]int, v2.Len())
	for i := range got2 {
		got2[i], _ = v2.Get(i)
	}
	assert.Equal(t, []int{2, 3, 4}, got1)
	assert.Equal(t, []int{1, 5}, got2)
}

func TestCloseInvalidatesVector(t *testing.T) {
	v, _ := New[int]()
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Close())

	err := v.Push(2)
	assert.ErrorIs(t, err, ErrUndefinedVector)

	err = v.Close()
	assert.ErrorIs(t, err, ErrUndefinedVector)
}

package vecarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollectorTracksVectorLifetime(t *testing.T) {
	m := &BasicMetricsCollector{}
	v, err := New[int](WithInitialCapacity[int](2), WithMetrics[int](m))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(i))
	}
	_, err = v.Pop()
	require.NoError(t, err)
	_, err = v.Get(100)
	assert.Error(t, err)

	snap := m.Snapshot()
	assert.EqualValues(t, 5, snap.InsertCount)
	assert.EqualValues(t, 0, snap.InsertErrors)
	assert.EqualValues(t, 1, snap.RemoveCount)
	assert.Greater(t, snap.GrowCount, int64(0))
}

func TestNoopMetricsCollectorIsDefault(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	require.NoError(t, v.Push(1))
	assert.Equal(t, 1, v.Len())
}

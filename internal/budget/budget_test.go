package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilBudgetIsUnlimited(t *testing.T) {
	var b *Budget
	assert.True(t, b.TryGrow(1<<40))
	assert.Equal(t, int64(0), b.Limit())
	b.Release(1 << 40)
}

func TestZeroLimitIsUnlimited(t *testing.T) {
	b := New(0)
	assert.True(t, b.TryGrow(1<<40))
}

func TestTryGrowRespectsLimit(t *testing.T) {
	b := New(100)
	assert.True(t, b.TryGrow(60))
	assert.True(t, b.TryGrow(40))
	assert.False(t, b.TryGrow(1))
	assert.Equal(t, int64(100), b.Used())
}

func TestReleaseGivesBackRoom(t *testing.T) {
	b := New(100)
	require.True(t, b.TryGrow(100))
	assert.False(t, b.TryGrow(1))
	b.Release(50)
	assert.True(t, b.TryGrow(50))
}

func TestGrowBlocksUntilContextDone(t *testing.T) {
	b := New(10)
	require.True(t, b.TryGrow(10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := b.Grow(ctx, 1)
	assert.Error(t, err)
}

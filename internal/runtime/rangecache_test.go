package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walkOut steps s until it leaves [lo, hi), without any cache.
func walkOut(g *domain.Graph, s domain.WalkState, lo, hi int) (domain.WalkState, uint64) {
	var steps uint64
	for s.Node >= lo && s.Node < hi {
		s = g.Step(s)
		steps++
	}
	return s, steps
}

func TestRangeCache_HitMatchesMiss(t *testing.T) {
	g := counterGraph(t, 8)
	cache := runtime.NewRangeCache(g, 0, 4, domain.SolveHooks{})
	ctx := context.Background()
	var stats domain.CacheStats

	entry := domain.WalkState{Node: 0, Bits: 0b1010_0000}
	want, wantSteps := walkOut(g, entry, 0, 4)

	first := entry
	tr, err := cache.Advance(ctx, &first, &stats)
	require.NoError(t, err)
	assert.False(t, tr.Looped)
	assert.Equal(t, wantSteps, tr.Steps)
	assert.Equal(t, want, first)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 1, cache.Len())

	// Same node and in-range bits, different bits outside the range.
	second := domain.WalkState{Node: 0, Bits: 0b0101_0000}
	tr2, err := cache.Advance(ctx, &second, &stats)
	require.NoError(t, err)
	assert.Equal(t, tr.Steps, tr2.Steps)
	assert.Equal(t, first.Node, second.Node)
	assert.Equal(t, first.Bits&0x0f, second.Bits&0x0f)
	assert.Equal(t, domain.Bits(0b0101_0000), second.Bits&^0x0f, "bits outside the range are preserved")

	assert.Equal(t, domain.CacheStats{Hits: 1, HitSteps: tr.Steps, Misses: 1, MissSteps: tr.Steps}, stats)
}

func TestRangeCache_InnerLoop(t *testing.T) {
	// nodes 0 and 1 only point at each other; node 2 leads to the terminal.
	g := mustGraph(t, []int{1, 0, 3}, []int{1, 0, 3})
	var loops int
	hooks := domain.SolveHooks{
		OnInnerLoop: func(_ context.Context, e *domain.CacheEvent) {
			loops++
			assert.Equal(t, 0, e.RangeLo)
			assert.Equal(t, 2, e.RangeHi)
		},
	}
	cache := runtime.NewRangeCache(g, 0, 2, hooks)
	var stats domain.CacheStats

	s := g.StartState()
	tr, err := cache.Advance(context.Background(), &s, &stats)
	require.NoError(t, err)
	assert.True(t, tr.Looped)
	assert.NotZero(t, tr.Steps)
	assert.Equal(t, 1, loops)
	assert.Zero(t, cache.Len(), "loops are not memoized")
	assert.Zero(t, stats.Crossings())
}

func TestRangeCache_Bounds(t *testing.T) {
	g := counterGraph(t, 6)
	cache := runtime.NewRangeCache(g, 2, 5, domain.SolveHooks{})
	lo, hi := cache.Bounds()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
	assert.True(t, cache.Contains(2))
	assert.False(t, cache.Contains(5))
	assert.False(t, cache.Contains(g.Terminal()))
}

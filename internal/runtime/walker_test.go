package runtime_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalker_Borders(t *testing.T) {
	g := counterGraph(t, 6)

	tests := []struct {
		name    string
		borders []int
		want    [][2]int
	}{
		{name: "No borders", borders: nil, want: [][2]int{{0, 6}}},
		{name: "Single border", borders: []int{3}, want: [][2]int{{0, 3}, {3, 6}}},
		{name: "Edge borders collapse", borders: []int{0, 6}, want: [][2]int{{0, 6}}},
		{name: "Unsorted duplicates", borders: []int{4, 2, 4}, want: [][2]int{{0, 2}, {2, 4}, {4, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := runtime.NewWalker(g, domain.SolveHooks{}, tt.borders...)
			require.NoError(t, err)

			var got [][2]int
			for _, c := range w.Ranges() {
				lo, hi := c.Bounds()
				got = append(got, [2]int{lo, hi})
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Out of range border", func(t *testing.T) {
		_, err := runtime.NewWalker(g, domain.SolveHooks{}, 7)
		assert.Error(t, err)
		_, err = runtime.NewWalker(g, domain.SolveHooks{}, -1)
		assert.Error(t, err)
	})
}

func TestDefaultBorder(t *testing.T) {
	assert.Equal(t, 0, runtime.DefaultBorder(0))
	assert.Equal(t, 1, runtime.DefaultBorder(1))
	assert.Equal(t, 4, runtime.DefaultBorder(4))
	assert.Equal(t, 7, runtime.DefaultBorder(10))
	assert.Equal(t, 34, runtime.DefaultBorder(64))
}

func TestWalker_StepAtTerminal(t *testing.T) {
	g := counterGraph(t, 3)
	w, err := runtime.NewWalker(g, domain.SolveHooks{}, 1)
	require.NoError(t, err)

	s := domain.WalkState{Node: g.Terminal(), Bits: 0b101}
	m, err := w.Step(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, s, m.Next)
	assert.Zero(t, m.Steps)
	assert.False(t, m.Looped)
}

func TestWalker_StatsCountCrossings(t *testing.T) {
	g := counterGraph(t, 10)
	reached, want := simulate(g)
	require.True(t, reached)

	w, err := runtime.NewWalker(g, domain.SolveHooks{}, 4)
	require.NoError(t, err)

	crossings := 0
	step := func(ctx context.Context, s domain.WalkState) (runtime.Move[domain.WalkState], error) {
		if s.Node != g.Terminal() {
			crossings++
		}
		return w.Step(ctx, s)
	}
	res, err := runtime.Detect(context.Background(), g.StartState(), step, func(s domain.WalkState) bool {
		return s.Node == g.Terminal()
	})
	require.NoError(t, err)

	assert.Equal(t, runtime.Finished, res.Kind)
	assert.Equal(t, want, res.Steps)

	stats := w.Stats()
	assert.Positive(t, stats.Hits, "the low range is re-entered with the same bits")
	assert.Positive(t, stats.Misses)
	assert.Equal(t, crossings, stats.Crossings())
	assert.Equal(t, want, stats.Steps())
}

func TestWalker_MatchesPlainDetect(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ctx := context.Background()

	for i := 0; i < 400; i++ {
		n := 1 + r.Intn(12)
		g := randomGraph(t, r, n)

		plain, err := runtime.Detect(ctx, g.StartState(), runtime.Unit(g.Step), func(s domain.WalkState) bool {
			return s.Node == g.Terminal()
		})
		require.NoError(t, err)

		w, err := runtime.NewWalker(g, domain.SolveHooks{}, r.Intn(n+1))
		require.NoError(t, err)
		cached, err := w.Run(ctx)
		require.NoError(t, err)

		require.Equal(t, plain.Kind, cached.Kind, "graph %v / %v", g.Left, g.Right)
		if plain.Kind == runtime.Finished {
			require.Equal(t, plain.Steps, cached.Steps, "graph %v / %v", g.Left, g.Right)
		}

		reached, steps := simulate(g)
		require.Equal(t, reached, plain.Kind == runtime.Finished)
		if reached {
			require.Equal(t, steps, plain.Steps)
		}
	}
}

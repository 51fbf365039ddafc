package runtime_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/stretchr/testify/require"
)

func mustGraph(t *testing.T, left, right []int) *domain.Graph {
	t.Helper()
	g, err := domain.NewGraph(left, right)
	require.NoError(t, err)
	return g
}

// randomGraph builds a graph with n nodes whose edges are uniform over [0, n].
func randomGraph(t *testing.T, r *rand.Rand, n int) *domain.Graph {
	t.Helper()
	left := make([]int, n)
	right := make([]int, n)
	for i := 0; i < n; i++ {
		left[i] = r.Intn(n + 1)
		right[i] = r.Intn(n + 1)
	}
	return mustGraph(t, left, right)
}

// counterGraph makes the walk count in binary over k nodes:
// node i goes Left back to node 0 and Right to node i+1.
func counterGraph(t *testing.T, k int) *domain.Graph {
	t.Helper()
	left := make([]int, k)
	right := make([]int, k)
	for i := 0; i < k; i++ {
		left[i] = 0
		right[i] = i + 1
	}
	return mustGraph(t, left, right)
}

// simulate walks g step by step, remembering every state.
func simulate(g *domain.Graph) (reached bool, steps uint64) {
	seen := make(map[domain.WalkState]bool)
	s := g.StartState()
	for s.Node != g.Terminal() {
		if seen[s] {
			return false, steps
		}
		seen[s] = true
		s = g.Step(s)
		steps++
	}
	return true, steps
}

package runtime

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// DefaultBorder returns the split point used when none is configured:
// n/2 + 2, clamped into [0, n].
func DefaultBorder(n int) int {
	b := n/2 + 2
	if b > n {
		b = n
	}
	return b
}

// Walker composes range caches covering [0, N) into a single super-step.
type Walker struct {
	graph  *domain.Graph
	ranges []*RangeCache
	owner  []int // node -> index into ranges
	stats  domain.CacheStats
}

// NewWalker splits the node space of g at the given borders.
// Borders are sorted and deduplicated; borders equal to 0 or N produce no
// empty range. With no borders the whole graph is one range.
func NewWalker(g *domain.Graph, hooks domain.SolveHooks, borders ...int) (*Walker, error) {
	n := g.Len()
	cuts := make([]int, 0, len(borders)+2)
	cuts = append(cuts, 0)
	sorted := append([]int(nil), borders...)
	sort.Ints(sorted)
	for _, b := range sorted {
		if b < 0 || b > n {
			return nil, fmt.Errorf("range border %d outside [0, %d]", b, n)
		}
		if b > cuts[len(cuts)-1] && b < n {
			cuts = append(cuts, b)
		}
	}
	cuts = append(cuts, n)

	w := &Walker{
		graph: g,
		owner: make([]int, n),
	}
	for i := 0; i+1 < len(cuts); i++ {
		lo, hi := cuts[i], cuts[i+1]
		if lo == hi {
			continue
		}
		for node := lo; node < hi; node++ {
			w.owner[node] = len(w.ranges)
		}
		w.ranges = append(w.ranges, NewRangeCache(g, lo, hi, hooks))
	}
	return w, nil
}

// Ranges returns the range caches in index order.
func (w *Walker) Ranges() []*RangeCache {
	return w.ranges
}

// Stats returns the cache counters accumulated so far.
func (w *Walker) Stats() domain.CacheStats {
	return w.stats
}

// Step is a StepFunc that jumps across one whole range.
// At the Terminal it is a zero-weight no-op.
func (w *Walker) Step(ctx context.Context, s domain.WalkState) (Move[domain.WalkState], error) {
	if s.Node == w.graph.Terminal() {
		return Move[domain.WalkState]{Next: s}, nil
	}

	t, err := w.ranges[w.owner[s.Node]].Advance(ctx, &s, &w.stats)
	if err != nil {
		return Move[domain.WalkState]{}, err
	}
	return Move[domain.WalkState]{Next: s, Steps: t.Steps, Looped: t.Looped}, nil
}

// Run detects the outcome of the walk from the graph's start state.
func (w *Walker) Run(ctx context.Context) (Result[domain.WalkState], error) {
	terminal := w.graph.Terminal()
	return Detect(ctx, w.graph.StartState(), w.Step, func(s domain.WalkState) bool {
		return s.Node == terminal
	})
}

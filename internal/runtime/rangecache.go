package runtime

import (
	"context"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// Transit is the result of one RangeCache.Advance.
// Looped means the walk stays inside the range forever; Steps then counts
// the steps taken until the repetition was detected.
type Transit struct {
	Steps  uint64
	Looped bool
}

type rangeKey struct {
	node int
	bits domain.Bits
}

type rangeEntry struct {
	steps uint64
	node  int
	bits  domain.Bits
}

// RangeCache memoizes walks confined to the node range [lo, hi).
//
// A node's move depends only on its own bit, so a walk that starts at a given
// node with given in-range bits always leaves the range the same way, whatever
// the bits outside the range hold.
type RangeCache struct {
	graph   *domain.Graph
	lo, hi  int
	mask    domain.Bits
	entries map[rangeKey]rangeEntry
	hooks   domain.SolveHooks
}

// NewRangeCache creates an empty cache for nodes [lo, hi) of g.
func NewRangeCache(g *domain.Graph, lo, hi int, hooks domain.SolveHooks) *RangeCache {
	return &RangeCache{
		graph:   g,
		lo:      lo,
		hi:      hi,
		mask:    domain.Mask(lo, hi),
		entries: make(map[rangeKey]rangeEntry),
		hooks:   hooks,
	}
}

// Contains reports whether node belongs to this range.
func (c *RangeCache) Contains(node int) bool {
	return node >= c.lo && node < c.hi
}

// Bounds returns the range [lo, hi).
func (c *RangeCache) Bounds() (int, int) {
	return c.lo, c.hi
}

// Len returns the number of memoized entries.
func (c *RangeCache) Len() int {
	return len(c.entries)
}

// Advance moves s out of the range, updating s in place and stats.
// Bits outside the range are never touched.
func (c *RangeCache) Advance(ctx context.Context, s *domain.WalkState, stats *domain.CacheStats) (Transit, error) {
	k := rangeKey{node: s.Node, bits: s.Bits & c.mask}
	if e, ok := c.entries[k]; ok {
		s.Node = e.node
		s.Bits = (s.Bits &^ c.mask) | e.bits
		stats.Hits++
		stats.HitSteps += e.steps
		return Transit{Steps: e.steps}, nil
	}

	entry := *s
	res, err := Detect(ctx, entry, Unit(c.graph.Step), func(w domain.WalkState) bool {
		return !c.Contains(w.Node)
	})
	if err != nil {
		return Transit{}, err
	}

	if res.Kind == Repeated {
		if c.hooks.OnInnerLoop != nil {
			c.hooks.OnInnerLoop(ctx, &domain.CacheEvent{RangeLo: c.lo, RangeHi: c.hi, Entry: entry, Steps: res.Steps})
		}
		*s = res.Final
		return Transit{Steps: res.Steps, Looped: true}, nil
	}

	*s = res.Final
	c.entries[k] = rangeEntry{steps: res.Steps, node: s.Node, bits: s.Bits & c.mask}
	stats.Misses++
	stats.MissSteps += res.Steps
	if c.hooks.OnCacheMiss != nil {
		c.hooks.OnCacheMiss(ctx, &domain.CacheEvent{RangeLo: c.lo, RangeHi: c.hi, Entry: entry, Steps: res.Steps})
	}
	return Transit{Steps: res.Steps}, nil
}

package runtime

import (
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/bits-and-blooms/bitset"
)

// CanReach reports whether the Terminal is reachable from node along some
// sequence of Left/Right choices, ignoring the toggle bits.
//
// onPath only covers the current DFS path: a node is marked on entry and
// cleared on exit, so it may be explored again from an unrelated branch.
// A node whose whole subtree failed is recorded in dead and not expanded
// again; both sets live for one call only.
func CanReach(g *domain.Graph, node int) bool {
	c := &reachCheck{
		graph:  g,
		onPath: bitset.New(uint(g.Len())),
		dead:   bitset.New(uint(g.Len())),
	}
	return c.reach(node)
}

type reachCheck struct {
	graph  *domain.Graph
	onPath *bitset.BitSet
	dead   *bitset.BitSet
}

func (c *reachCheck) reach(node int) bool {
	if node == c.graph.Terminal() {
		return true
	}
	if c.onPath.Test(uint(node)) || c.dead.Test(uint(node)) {
		return false
	}

	c.onPath.Set(uint(node))
	ok := c.reach(c.graph.Left[node]) || c.reach(c.graph.Right[node])
	c.onPath.Clear(uint(node))
	if !ok {
		c.dead.Set(uint(node))
	}
	return ok
}

package runtime

import (
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/bits-and-blooms/bitset"
)

// PopularNode returns the node referenced most often as an edge target.
// The Terminal is never chosen; ties go to the lowest index. It returns -1
// for an empty graph.
func PopularNode(g *domain.Graph) int {
	n := g.Len()
	if n == 0 {
		return -1
	}
	refs := make([]int, n+1)
	for i := 0; i < n; i++ {
		refs[g.Left[i]]++
		refs[g.Right[i]]++
	}

	best := 0
	for i := 1; i < n; i++ {
		if refs[i] > refs[best] {
			best = i
		}
	}
	return best
}

// Ordering computes a node order by breadth-first layering from the most
// referenced node. Nodes the layering never reaches follow in their original
// order. order[i] is the old index of new node i.
func Ordering(g *domain.Graph) []int {
	n := g.Len()
	order := make([]int, 0, n)
	root := PopularNode(g)
	if root < 0 {
		return order
	}

	visited := bitset.New(uint(n))
	visited.Set(uint(root))
	for layer := []int{root}; len(layer) != 0; layer = nextLayer(g, layer, visited) {
		order = append(order, layer...)
	}

	for i := 0; i < n; i++ {
		if !visited.Test(uint(i)) {
			order = append(order, i)
		}
	}
	return order
}

func nextLayer(g *domain.Graph, layer []int, visited *bitset.BitSet) []int {
	var children []int
	terminal := g.Terminal()
	for _, node := range layer {
		for _, to := range [2]int{g.Left[node], g.Right[node]} {
			if to < terminal && !visited.Test(uint(to)) {
				visited.Set(uint(to))
				children = append(children, to)
			}
		}
	}
	return children
}

// Relabel renumbers g using Ordering.
func Relabel(g *domain.Graph) (*domain.Graph, error) {
	return g.Relabel(Ordering(g))
}

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Graph is a binary functional graph. Node i leaves through Left[i] or Right[i];
// targets are node indices or the Terminal index N (== len(Left)).
// A Graph is immutable after construction.
type Graph struct {
	Left  []int
	Right []int
	Start int
}

// NewGraph validates the edge lists and returns the graph. The walk starts at node 0.
func NewGraph(left, right []int) (*Graph, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d left edges but %d right edges", ErrMalformedGraph, len(left), len(right))
	}
	n := len(left)
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes (limit %d)", ErrTooManyNodes, n, MaxNodes)
	}
	for i := 0; i < n; i++ {
		if left[i] < 0 || left[i] > n {
			return nil, fmt.Errorf("%w: node %d left edge %d outside [0, %d]", ErrMalformedGraph, i, left[i], n)
		}
		if right[i] < 0 || right[i] > n {
			return nil, fmt.Errorf("%w: node %d right edge %d outside [0, %d]", ErrMalformedGraph, i, right[i], n)
		}
	}

	g := &Graph{
		Left:  make([]int, n),
		Right: make([]int, n),
	}
	copy(g.Left, left)
	copy(g.Right, right)
	return g, nil
}

// Len returns the number of internal nodes.
func (g *Graph) Len() int {
	return len(g.Left)
}

// Terminal returns the index of the terminal sentinel.
func (g *Graph) Terminal() int {
	return len(g.Left)
}

// StartState returns the initial walk state: the start node with all bits clear.
func (g *Graph) StartState() WalkState {
	return WalkState{Node: g.Start}
}

// Step advances s by one transition. It must not be called on the Terminal.
func (g *Graph) Step(s WalkState) WalkState {
	b := s.Node
	next := g.Left[b]
	if s.Bits.Test(b) {
		next = g.Right[b]
	}
	return WalkState{Node: next, Bits: s.Bits.Flip(b)}
}

// Relabel returns a copy of the graph where old node order[i] becomes node i.
// The Terminal index is unchanged.
func (g *Graph) Relabel(order []int) (*Graph, error) {
	n := g.Len()
	if len(order) != n {
		return nil, fmt.Errorf("%w: ordering has %d entries for %d nodes", ErrMalformedGraph, len(order), n)
	}

	m := make([]int, n+1)
	for i := range m {
		m[i] = -1
	}
	m[n] = n
	for i, old := range order {
		if old < 0 || old >= n || m[old] != -1 {
			return nil, fmt.Errorf("%w: ordering is not a permutation (entry %d = %d)", ErrMalformedGraph, i, old)
		}
		m[old] = i
	}

	out := &Graph{
		Left:  make([]int, n),
		Right: make([]int, n),
		Start: m[g.Start],
	}
	for old := 0; old < n; old++ {
		out.Left[m[old]] = m[g.Left[old]]
		out.Right[m[old]] = m[g.Right[old]]
	}
	return out, nil
}

// Fingerprint identifies the graph by its edges and start node.
func (g *Graph) Fingerprint() string {
	h := sha256.New()
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, int64(g.Len()), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(g.Start), 10)
	h.Write(buf)
	for i := range g.Left {
		buf = buf[:0]
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(g.Left[i]), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(g.Right[i]), 10)
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

package domain

import "fmt"

// WalkState is the full automaton state: the current node and the toggle bits.
// Two states are equal only when both fields match.
type WalkState struct {
	Node int
	Bits Bits
}

func (s WalkState) String() string {
	return fmt.Sprintf("(%d, %#x)", s.Node, uint64(s.Bits))
}

package domain

import (
	"fmt"
	"strconv"
)

// OutcomeKind classifies how a walk ended.
type OutcomeKind string

const (
	ReachedTarget OutcomeKind = "reached"     // Terminal reached after Steps steps
	CycleDetected OutcomeKind = "cycle"       // A repeated state was detected after Steps steps
	Unreachable   OutcomeKind = "unreachable" // No path to Terminal exists at all
)

// Outcome is the answer for one graph.
type Outcome struct {
	Kind  OutcomeKind `json:"kind"`
	Steps uint64      `json:"steps"`
}

// String renders the answer the way it is printed for a case.
func (o Outcome) String() string {
	switch o.Kind {
	case ReachedTarget:
		return strconv.FormatUint(o.Steps, 10)
	case CycleDetected:
		return fmt.Sprintf("Infinity %d", o.Steps)
	case Unreachable:
		return "Unreachable"
	default:
		return fmt.Sprintf("unknown outcome %q", string(o.Kind))
	}
}

// Valid reports whether the kind is one of the known outcome kinds.
func (o Outcome) Valid() bool {
	switch o.Kind {
	case ReachedTarget, CycleDetected, Unreachable:
		return true
	}
	return false
}

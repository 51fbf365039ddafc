package runtime

import (
	"context"
	"fmt"
)

// pollInterval is how many moves pass between context checks.
const pollInterval = 1 << 16

// Move is the result of one application of a StepFunc.
// Steps is the weight of the move; Looped reports that the move itself
// proved the walk can never finish, after Steps steps.
type Move[S comparable] struct {
	Next   S
	Steps  uint64
	Looped bool
}

// StepFunc advances a state. Errors are reserved for cancellation.
type StepFunc[S comparable] func(ctx context.Context, s S) (Move[S], error)

// DetectKind classifies the end of a detection run.
type DetectKind int

const (
	// Finished means the done predicate matched.
	Finished DetectKind = iota
	// Repeated means a state was seen twice, or a move reported a loop.
	Repeated
)

func (k DetectKind) String() string {
	if k == Finished {
		return "finished"
	}
	return "repeated"
}

// Result is the outcome of Detect. Final is the last state reached.
type Result[S comparable] struct {
	Kind  DetectKind
	Steps uint64
	Final S
}

// Detect runs Brent's cycle detection from start until done matches or a state repeats.
//
// The tortoise is parked at checkpoints; after each checkpoint the next one is
// placed pow steps further, with pow doubling. Steps are weighted by Move.Steps,
// so a checkpoint is taken as soon as the path reaches or passes the threshold.
// With unit weights this is the textbook schedule 1, 3, 7, 15, ...
func Detect[S comparable](ctx context.Context, start S, step StepFunc[S], done func(S) bool) (Result[S], error) {
	tortoise, hare := start, start
	var path, pow, thr uint64 = 0, 1, 1
	var moves uint64

	for !done(hare) {
		moves++
		if moves%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result[S]{Kind: Repeated, Steps: path, Final: hare}, fmt.Errorf("cycle detection interrupted after %d steps: %w", path, err)
			}
		}

		m, err := step(ctx, hare)
		if err != nil {
			return Result[S]{Kind: Repeated, Steps: path, Final: hare}, err
		}
		if m.Looped {
			return Result[S]{Kind: Repeated, Steps: path + m.Steps, Final: m.Next}, nil
		}

		hare = m.Next
		path += m.Steps
		if hare == tortoise {
			return Result[S]{Kind: Repeated, Steps: path, Final: hare}, nil
		}
		if path >= thr {
			tortoise = hare
			for path >= thr {
				pow *= 2
				thr += pow
			}
		}
	}

	return Result[S]{Kind: Finished, Steps: path, Final: hare}, nil
}

// Unit wraps a plain transition as a StepFunc of weight one.
func Unit[S comparable](next func(S) S) StepFunc[S] {
	return func(_ context.Context, s S) (Move[S], error) {
		return Move[S]{Next: next(s), Steps: 1}, nil
	}
}

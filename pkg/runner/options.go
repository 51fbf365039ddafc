package runner

import (
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithParallel sets how many cases are solved at once.
func WithParallel(n int) Option {
	return func(r *Runner) {
		r.Parallel = n
	}
}

// WithSelection restricts the batch to the cases for which selected is true.
func WithSelection(selected func(caseNo int) bool) Option {
	return func(r *Runner) {
		r.Selected = selected
	}
}

// WithStats appends cache counters to each cached answer.
func WithStats(stats bool) Option {
	return func(r *Runner) {
		r.Stats = stats
	}
}

// WithTimeout bounds the time spent on a single case.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.Timeout = d
	}
}

// WithStyler configures answer decoration.
func WithStyler(styler AnswerStyler) Option {
	return func(r *Runner) {
		r.Styler = styler
	}
}

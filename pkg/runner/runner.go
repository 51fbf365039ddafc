package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/togglewalk/pkg/adapters/stream"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Runner drives a batch: it reads every case from the input, solves the
// selected ones and prints one answer line per solved case, in case order.
type Runner struct {
	// Solver decides each graph. Required.
	Solver ports.Solver

	// Logger is used for batch level logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Parallel is the number of cases solved at once. Values below 2 solve
	// cases one after another and print each answer as soon as it is known.
	Parallel int

	// Selected filters cases by 1-based number. Nil selects every case.
	Selected func(caseNo int) bool

	// Stats appends the range cache counters to cached answers.
	Stats bool

	// Timeout bounds each solve. Zero means no limit.
	Timeout time.Duration

	// Styler decorates the answer text, e.g. with terminal colors.
	Styler AnswerStyler
}

// AnswerStyler decorates an answer before it is written.
type AnswerStyler func(outcome domain.Outcome, text string) string

// Summary aggregates a finished batch.
type Summary struct {
	Cases    int
	Solved   int
	ByKind   map[domain.OutcomeKind]int
	Stats    domain.CacheStats
	Duration time.Duration
}

type job struct {
	caseNo int
	graph  *domain.Graph
}

// NewRunner creates a Runner around a solver.
func NewRunner(solver ports.Solver, opts ...Option) *Runner {
	r := &Runner{
		Solver:   solver,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Parallel: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads the batch from in and writes answers to out.
// Unselected cases are still parsed to keep the stream position.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (*Summary, error) {
	if r.Solver == nil {
		return nil, errors.New("runner: no solver configured")
	}
	started := time.Now()
	reader := stream.NewReader(in)

	count, err := reader.ReadCount()
	if err != nil {
		return nil, err
	}
	r.logger().Info("batch started", "cases", count, "parallel", r.Parallel)

	summary := &Summary{Cases: count, ByKind: make(map[domain.OutcomeKind]int)}
	var pending []job
	for i := 1; i <= count; i++ {
		g, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return summary, &domain.InputError{
				Case:  i,
				Cause: fmt.Errorf("%w: expected %d cases, got %d", domain.ErrMalformedInput, count, i-1),
			}
		}
		if err != nil {
			return summary, err
		}
		if r.Selected != nil && !r.Selected(i) {
			continue
		}
		if r.Parallel > 1 {
			pending = append(pending, job{caseNo: i, graph: g})
			continue
		}
		report, err := r.solve(ctx, i, g)
		if err != nil {
			return summary, err
		}
		if err := r.emit(out, summary, i, report); err != nil {
			return summary, err
		}
	}

	if len(pending) > 0 {
		if err := r.runParallel(ctx, out, summary, pending); err != nil {
			return summary, err
		}
	}

	summary.Duration = time.Since(started)
	r.logger().Info("batch finished",
		"solved", summary.Solved,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (r *Runner) runParallel(ctx context.Context, out io.Writer, summary *Summary, jobs []job) error {
	reports := make([]*domain.Report, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.Parallel)
	for i, j := range jobs {
		eg.Go(func() error {
			report, err := r.solve(egCtx, j.caseNo, j.graph)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for i, j := range jobs {
		if err := r.emit(out, summary, j.caseNo, reports[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) solve(ctx context.Context, caseNo int, g *domain.Graph) (*domain.Report, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return r.Solver.Solve(ctx, caseNo, g)
}

func (r *Runner) emit(out io.Writer, summary *Summary, caseNo int, report *domain.Report) error {
	summary.Solved++
	summary.ByKind[report.Outcome.Kind]++
	summary.Stats.Hits += report.Stats.Hits
	summary.Stats.HitSteps += report.Stats.HitSteps
	summary.Stats.Misses += report.Stats.Misses
	summary.Stats.MissSteps += report.Stats.MissSteps

	if _, err := fmt.Fprintf(out, "Case #%d: %s\n", caseNo, r.FormatAnswer(report)); err != nil {
		return fmt.Errorf("write answer: %w", err)
	}
	return nil
}

// FormatAnswer renders the answer text of a report without the case prefix.
func (r *Runner) FormatAnswer(report *domain.Report) string {
	text := report.Outcome.String()
	if r.Styler != nil {
		text = r.Styler(report.Outcome, text)
	}
	if r.Stats && report.Cached && report.Outcome.Kind != domain.Unreachable {
		text += " (stats: " + report.Stats.String() + ")"
	}
	return text
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

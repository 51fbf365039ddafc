package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/togglewalk/pkg/domain"
)

// Engine solves one graph at a time. It holds configuration only; every call
// to Solve builds its own caches, so an Engine may be shared between goroutines.
type Engine struct {
	logger  *slog.Logger
	hooks   domain.SolveHooks
	cached  bool
	relabel bool
	borders []int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.SolveHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithCaching selects the range-cached walk (true) or the plain walk (false).
func WithCaching(cached bool) EngineOption {
	return func(e *Engine) {
		e.cached = cached
	}
}

// WithRelabel toggles node relabeling before caching. Enabled by default.
func WithRelabel(relabel bool) EngineOption {
	return func(e *Engine) {
		e.relabel = relabel
	}
}

// WithBorders sets the range split points. Without it DefaultBorder is used.
func WithBorders(borders ...int) EngineOption {
	return func(e *Engine) {
		e.borders = append([]int(nil), borders...)
	}
}

// NewEngine creates an engine. The default is the cached, relabeled walk.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		cached:  true,
		relabel: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve decides the walk of g. caseNo is only used for logs and hooks.
func (e *Engine) Solve(ctx context.Context, caseNo int, g *domain.Graph) (*domain.Report, error) {
	started := time.Now()
	event := &domain.CaseEvent{Case: caseNo, Nodes: g.Len(), Cached: e.cached}
	if e.hooks.OnCaseStart != nil {
		e.hooks.OnCaseStart(ctx, event)
	}

	report, err := e.solve(ctx, g)
	if err != nil {
		e.logger.Debug("solve aborted", "case", caseNo, "err", err)
		return nil, fmt.Errorf("case #%d: %w", caseNo, err)
	}
	report.Duration = time.Since(started)

	e.logger.Debug("case solved",
		"case", caseNo,
		"nodes", g.Len(),
		"cached", report.Cached,
		"borders", report.Borders,
		"answer", report.Outcome.String(),
		"stats", report.Stats.String(),
		"duration", report.Duration,
	)

	if e.hooks.OnCaseDone != nil {
		event.Outcome = report.Outcome
		event.Stats = report.Stats
		event.Duration = report.Duration
		e.hooks.OnCaseDone(ctx, event)
	}
	return report, nil
}

func (e *Engine) solve(ctx context.Context, g *domain.Graph) (*domain.Report, error) {
	report := &domain.Report{Cached: e.cached}
	if !CanReach(g, g.Start) {
		report.Outcome = domain.Outcome{Kind: domain.Unreachable}
		return report, nil
	}

	if !e.cached {
		terminal := g.Terminal()
		res, err := Detect(ctx, g.StartState(), Unit(g.Step), func(s domain.WalkState) bool {
			return s.Node == terminal
		})
		if err != nil {
			return nil, err
		}
		report.Outcome = toOutcome(res)
		return report, nil
	}

	walked := g
	if e.relabel {
		r, err := Relabel(g)
		if err != nil {
			return nil, fmt.Errorf("relabel: %w", err)
		}
		walked = r
		report.Relabeled = true
	}

	borders := clampBorders(e.borders, walked.Len())
	if borders == nil {
		borders = []int{DefaultBorder(walked.Len())}
	}
	w, err := NewWalker(walked, e.hooks, borders...)
	if err != nil {
		return nil, err
	}
	report.Borders = borders

	res, err := w.Run(ctx)
	if err != nil {
		return nil, err
	}
	report.Outcome = toOutcome(res)
	report.Stats = w.Stats()
	return report, nil
}

// Variant names the configuration that decides the walk of an n-node graph.
// Cycle counts depend on it, so stored answers are keyed by it.
func (e *Engine) Variant(n int) string {
	if !e.cached {
		return "plain"
	}
	borders := clampBorders(e.borders, n)
	if borders == nil {
		borders = []int{DefaultBorder(n)}
	}
	parts := make([]string, len(borders))
	for i, b := range borders {
		parts[i] = strconv.Itoa(b)
	}
	return fmt.Sprintf("cached;relabel=%t;borders=%s", e.relabel, strings.Join(parts, ","))
}

func toOutcome(res Result[domain.WalkState]) domain.Outcome {
	if res.Kind == Finished {
		return domain.Outcome{Kind: domain.ReachedTarget, Steps: res.Steps}
	}
	return domain.Outcome{Kind: domain.CycleDetected, Steps: res.Steps}
}

// clampBorders fits configured borders into [0, n]; one configuration is
// shared by graphs of every size.
func clampBorders(borders []int, n int) []int {
	if borders == nil {
		return nil
	}
	out := make([]int, len(borders))
	for i, b := range borders {
		switch {
		case b < 0:
			b = 0
		case b > n:
			b = n
		}
		out[i] = b
	}
	return out
}

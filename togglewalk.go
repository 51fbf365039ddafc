package togglewalk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/aretw0/togglewalk/pkg/ports"
	"github.com/aretw0/togglewalk/pkg/runner"
)

// Solver is the high-level entry point of the library.
// It wraps the internal runtime engine and an optional result store.
type Solver struct {
	runtime *runtime.Engine
	store   ports.ResultStore
	locker  ports.DistributedLocker
	lockTTL time.Duration
	logger  *slog.Logger
	opts    []runtime.EngineOption
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithCaching selects the range-cached walk. Enabled by default.
func WithCaching(cached bool) Option {
	return func(s *Solver) {
		s.opts = append(s.opts, runtime.WithCaching(cached))
	}
}

// WithRelabel toggles node relabeling before caching. Enabled by default.
func WithRelabel(relabel bool) Option {
	return func(s *Solver) {
		s.opts = append(s.opts, runtime.WithRelabel(relabel))
	}
}

// WithBorders sets explicit range borders. Each graph clamps them to its size.
func WithBorders(borders ...int) Option {
	return func(s *Solver) {
		s.opts = append(s.opts, runtime.WithBorders(borders...))
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
		s.opts = append(s.opts, runtime.WithLogger(logger))
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.SolveHooks) Option {
	return func(s *Solver) {
		s.opts = append(s.opts, runtime.WithHooks(hooks))
	}
}

// WithStore reuses answers for graphs that were solved before.
func WithStore(store ports.ResultStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithLocker guards each fingerprint while it is solved, so instances that
// share a store solve a graph once. It only applies together with WithStore.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(s *Solver) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	s.runtime = runtime.NewEngine(s.opts...)
	return s
}

// Solve decides the walk of g. caseNo only labels logs and hooks.
// With a store configured, a known fingerprint short-circuits the walk.
func (s *Solver) Solve(ctx context.Context, caseNo int, g *domain.Graph) (*domain.Report, error) {
	if s.store == nil {
		return s.runtime.Solve(ctx, caseNo, g)
	}

	fp := s.storeKey(g)
	if report, ok := s.lookup(ctx, fp); ok {
		return report, nil
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, fp, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", fp, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("unlock failed", "fingerprint", fp, "err", err)
			}
		}()
		if report, ok := s.lookup(ctx, fp); ok {
			return report, nil
		}
	}

	report, err := s.runtime.Solve(ctx, caseNo, g)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, fp, report.Outcome); err != nil {
		s.logger.Warn("result store save failed", "fingerprint", fp, "err", err)
	}
	return report, nil
}

// storeKey mixes the engine variant into the graph fingerprint: the same
// graph reports different cycle counts under different borders or modes.
func (s *Solver) storeKey(g *domain.Graph) string {
	return g.Fingerprint() + "@" + s.runtime.Variant(g.Len())
}

func (s *Solver) lookup(ctx context.Context, fp string) (*domain.Report, bool) {
	outcome, err := s.store.Load(ctx, fp)
	if err == nil {
		return &domain.Report{Outcome: outcome, Stored: true}, true
	}
	if !errors.Is(err, domain.ErrResultNotFound) {
		s.logger.Warn("result store lookup failed", "fingerprint", fp, "err", err)
	}
	return nil, false
}

// SolveEdges builds a graph from 0-based edge lists and solves it.
func (s *Solver) SolveEdges(ctx context.Context, left, right []int) (*domain.Report, error) {
	g, err := domain.NewGraph(left, right)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return s.Solve(ctx, 1, g)
}

// NewRunner returns a batch runner backed by this Solver.
func (s *Solver) NewRunner(opts ...runner.Option) *runner.Runner {
	return runner.NewRunner(s, append([]runner.Option{runner.WithLogger(s.logger)}, opts...)...)
}

var _ ports.Solver = (*Solver)(nil)

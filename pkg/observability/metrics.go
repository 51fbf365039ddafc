package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects solver counters on its own registry.
// Wire it into an engine with Hooks.
type Metrics struct {
	registry *prometheus.Registry

	cases      *prometheus.CounterVec
	hits       prometheus.Counter
	misses     prometheus.Counter
	cacheSteps *prometheus.CounterVec
	duration   prometheus.Histogram
	innerLoops prometheus.Counter
}

// NewMetrics creates and registers the solver collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "togglewalk_cases_total",
				Help: "Solved cases by outcome",
			},
			[]string{"outcome"},
		),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "togglewalk_cache_hits_total",
			Help: "Range crossings answered from a range cache",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "togglewalk_cache_misses_total",
			Help: "Range crossings computed by an inner walk",
		}),
		cacheSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "togglewalk_cache_steps_total",
				Help: "Unit steps covered by range crossings",
			},
			[]string{"path"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "togglewalk_solve_duration_seconds",
			Help:    "Wall time of a single solve",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		innerLoops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "togglewalk_inner_loops_total",
			Help: "Range walks that looped without leaving their range",
		}),
	}
	m.registry.MustRegister(m.cases, m.hits, m.misses, m.cacheSteps, m.duration, m.innerLoops)
	return m
}

// Registry exposes the registry for promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns solve hooks that feed the collectors.
func (m *Metrics) Hooks() domain.SolveHooks {
	return domain.SolveHooks{
		OnCaseDone: func(_ context.Context, e *domain.CaseEvent) {
			m.cases.WithLabelValues(string(e.Outcome.Kind)).Inc()
			m.duration.Observe(e.Duration.Seconds())
			if !e.Cached {
				return
			}
			m.hits.Add(float64(e.Stats.Hits))
			m.misses.Add(float64(e.Stats.Misses))
			m.cacheSteps.WithLabelValues("hit").Add(float64(e.Stats.HitSteps))
			m.cacheSteps.WithLabelValues("miss").Add(float64(e.Stats.MissSteps))
		},
		OnInnerLoop: func(context.Context, *domain.CacheEvent) {
			m.innerLoops.Inc()
		},
	}
}

// WriteTextfile dumps the current values in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}

package observability

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter builds a graph whose walk counts through toggle patterns.
func counter(t *testing.T, k int) *domain.Graph {
	t.Helper()
	left := make([]int, k)
	right := make([]int, k)
	for i := range right {
		right[i] = i + 1
	}
	g, err := domain.NewGraph(left, right)
	require.NoError(t, err)
	return g
}

func TestMetrics_CachedSolve(t *testing.T) {
	m := NewMetrics()
	eng := runtime.NewEngine(runtime.WithHooks(m.Hooks()))

	report, err := eng.Solve(context.Background(), 1, counter(t, 8))
	require.NoError(t, err)
	require.Equal(t, domain.ReachedTarget, report.Outcome.Kind)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cases.WithLabelValues("reached")))
	assert.Equal(t, float64(report.Stats.Hits), testutil.ToFloat64(m.hits))
	assert.Equal(t, float64(report.Stats.Misses), testutil.ToFloat64(m.misses))
	assert.Equal(t, float64(report.Stats.HitSteps), testutil.ToFloat64(m.cacheSteps.WithLabelValues("hit")))
	assert.Equal(t, float64(report.Stats.MissSteps), testutil.ToFloat64(m.cacheSteps.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_PlainSolveSkipsCacheCounters(t *testing.T) {
	m := NewMetrics()
	hooks := m.Hooks()
	hooks.OnCaseDone(context.Background(), &domain.CaseEvent{
		Case:     1,
		Outcome:  domain.Outcome{Kind: domain.CycleDetected, Steps: 3},
		Stats:    domain.CacheStats{Hits: 5},
		Duration: time.Millisecond,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cases.WithLabelValues("cycle")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.hits))
}

func TestMetrics_InnerLoop(t *testing.T) {
	m := NewMetrics()
	m.Hooks().OnInnerLoop(context.Background(), &domain.CacheEvent{RangeLo: 0, RangeHi: 2})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.innerLoops))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.cases.WithLabelValues("unreachable").Inc()

	path := filepath.Join(t.TempDir(), "togglewalk.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `togglewalk_cases_total{outcome="unreachable"} 1`)
}

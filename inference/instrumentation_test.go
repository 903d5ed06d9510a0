package inference

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bayesnet/internal/fixtures"
	"github.com/katalvlaran/bayesnet/ordering"
)

func newSprinkler(t *testing.T, opts ...Option) *VariableElimination {
	t.Helper()
	n, err := fixtures.Sprinkler()
	require.NoError(t, err)
	ve, err := NewVariableElimination(n, opts...)
	require.NoError(t, err)

	return ve
}

func TestMetrics_CountOutcomesAndCacheHits(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	ve := newSprinkler(t, WithMetrics(m))

	wet := map[string]int{"WetGrass": 1}
	_, err = ve.Query([]string{"Rain"}, wet)
	require.NoError(t, err)
	_, err = ve.Query([]string{"Rain"}, map[string]int{"WetGrass": 0})
	require.NoError(t, err) // same key: evidence values do not matter
	_, err = ve.Query([]string{"Rain"}, map[string]int{"Rain": 1})
	require.Error(t, err)
	_, err = ve.Query([]string{"Cloudy"}, map[string]int{"WetGrass": 1, "Sprinkler": 0, "Rain": 0})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(OutcomeQueryError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(OutcomeNumericError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))

	// registering twice on one registry is an error
	_, err = NewMetrics(reg)
	assert.Error(t, err)

	// nil registry and nil metrics are both fine
	_, err = NewMetrics(nil)
	assert.NoError(t, err)
	var none *Metrics
	assert.NotPanics(t, func() { none.observeQuery(OutcomeOK, 0, 1); none.cacheHit() })
}

func TestOrderCache_DisabledAndEnabled(t *testing.T) {
	on := newSprinkler(t)
	off := newSprinkler(t, WithOrderCache(false))
	require.NotNil(t, on.cache)
	assert.Nil(t, off.cache)

	for i := 0; i < 3; i++ {
		_, err := on.Query([]string{"Rain"}, map[string]int{"WetGrass": i % 2})
		require.NoError(t, err)
		_, err = off.Query([]string{"Rain"}, map[string]int{"WetGrass": i % 2})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, on.cache.len())

	_, err := on.Query([]string{"Rain"}, nil, WithQueryHeuristic(ordering.MinNeighbors))
	require.NoError(t, err)
	assert.Equal(t, 2, on.cache.len())

	// explicit orders bypass the cache
	_, err = on.Query([]string{"Rain"}, map[string]int{"WetGrass": 1},
		WithEliminationOrder("Cloudy", "Sprinkler"))
	require.NoError(t, err)
	assert.Equal(t, 2, on.cache.len())
}

func TestOrderCache_ComputesOncePerKey(t *testing.T) {
	var c orderCache
	var calls int32
	release := make(chan struct{})
	compute := func() ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"A", "B"}, nil
	}

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, _, err := c.get("k", compute)
			assert.NoError(t, err)
			results[i] = o
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, o := range results {
		assert.Equal(t, []string{"A", "B"}, o)
	}
	_, hit, err := c.get("k", compute)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestOrderKey_IgnoresListOrder(t *testing.T) {
	a := orderKey([]string{"B", "A"}, map[string]int{"X": 1, "Y": 0}, ordering.MinFill, true)
	b := orderKey([]string{"A", "B"}, map[string]int{"Y": 1, "X": 1}, ordering.MinFill, true)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, orderKey([]string{"A", "B"}, map[string]int{"X": 1, "Y": 0}, ordering.MinFill, false))
	assert.NotEqual(t, a, orderKey([]string{"A", "B"}, map[string]int{"X": 1, "Y": 0}, ordering.MinWeight, true))
	assert.NotEqual(t, a, orderKey([]string{"A", "B", "X"}, map[string]int{"Y": 0}, ordering.MinFill, true))
}

func TestLogging_EliminationSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ve := newSprinkler(t, WithLogger(zap.New(core)), WithPruning(false))

	_, err := ve.Query([]string{"Rain"}, map[string]int{"WetGrass": 1})
	require.NoError(t, err)

	plans := logs.FilterMessage("elimination order").All()
	require.Len(t, plans, 1)
	assert.Equal(t, "Query", plans[0].ContextMap()["op"])
	assert.Equal(t, 2, logs.FilterMessage("eliminated").Len())

	_, err = ve.Query([]string{"Cloudy"}, map[string]int{"WetGrass": 1, "Sprinkler": 0, "Rain": 0})
	require.Error(t, err)
	warns := logs.FilterMessage("degenerate posterior").All()
	require.Len(t, warns, 1)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
}

// SPDX-License-Identifier: MIT

package inference

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes used as the "outcome" label of bayesnet_queries_total.
const (
	OutcomeOK           = "ok"
	OutcomeQueryError   = "query_error"
	OutcomeNumericError = "numeric_error"
	OutcomeError        = "error"
)

// Metrics instruments an engine. A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries    *prometheus.CounterVec
	duration   prometheus.Histogram
	factorSize prometheus.Histogram
	cacheHits  prometheus.Counter
}

// NewMetrics creates the engine collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bayesnet_queries_total",
			Help: "Inference queries by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bayesnet_query_duration_seconds",
			Help:    "Wall time of a single variable elimination run.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		factorSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bayesnet_intermediate_factor_size",
			Help:    "Entries in the largest intermediate factor of a query.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bayesnet_order_cache_hits_total",
			Help: "Elimination orders served from the cache.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.queries, m.duration, m.factorSize, m.cacheHits} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeQuery(outcome string, d time.Duration, largest int) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	if largest > 0 {
		m.factorSize.Observe(float64(largest))
	}
}

func (m *Metrics) cacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

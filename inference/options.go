// SPDX-License-Identifier: MIT

package inference

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/ordering"
)

const panicHeuristicInvalid = "inference: WithHeuristic: unknown heuristic"

// Option configures a VariableElimination engine.
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	heuristic   ordering.Heuristic
	logger      *zap.Logger
	metrics     *Metrics
	cacheOrders bool
	prune       bool
	factorOpts  []factor.Option
}

// DefaultOptions: MinFill, no-op logger, no metrics, order cache and
// barren-node pruning enabled, factor.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		heuristic:   ordering.MinFill,
		logger:      zap.NewNop(),
		cacheOrders: true,
		prune:       true,
	}
}

// WithHeuristic sets the default ordering heuristic. Panics on an unknown value.
func WithHeuristic(h ordering.Heuristic) Option {
	if !h.Valid() {
		panic(panicHeuristicInvalid)
	}

	return func(o *Options) { o.heuristic = h }
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation. nil disables it.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithOrderCache toggles caching of heuristic orders per
// (query variables, evidence variables, heuristic) key.
func WithOrderCache(on bool) Option {
	return func(o *Options) { o.cacheOrders = on }
}

// WithPruning toggles restriction to the ancestral set of query ∪ evidence.
func WithPruning(on bool) Option {
	return func(o *Options) { o.prune = on }
}

// WithEpsilon sets the normalization threshold below which a posterior is
// degenerate. Panics like factor.WithEpsilon.
func WithEpsilon(eps float64) Option {
	fo := factor.WithEpsilon(eps)

	return func(o *Options) { o.factorOpts = []factor.Option{fo} }
}

// QueryOption adjusts a single query.
type QueryOption func(*queryOptions)

type queryOptions struct {
	order        []string
	hasOrder     bool
	heuristic    ordering.Heuristic
	hasHeuristic bool
}

// WithEliminationOrder forces an explicit order. It must list every
// variable that is neither queried nor observed, exactly once.
func WithEliminationOrder(order ...string) QueryOption {
	cp := append([]string(nil), order...)

	return func(q *queryOptions) {
		q.order = cp
		q.hasOrder = true
	}
}

// WithQueryHeuristic overrides the engine heuristic for one query.
// Panics on an unknown value.
func WithQueryHeuristic(h ordering.Heuristic) QueryOption {
	if !h.Valid() {
		panic(panicHeuristicInvalid)
	}

	return func(q *queryOptions) {
		q.heuristic = h
		q.hasHeuristic = true
	}
}

func gatherQueryOptions(opts []QueryOption) queryOptions {
	var q queryOptions
	for _, opt := range opts {
		opt(&q)
	}

	return q
}

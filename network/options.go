// SPDX-License-Identifier: MIT

package network

import (
	"math"

	"go.uber.org/zap"
)

// DefaultTolerance is the absolute tolerance for CPD column sums.
const DefaultTolerance = 1e-6

const panicToleranceInvalid = "network: WithTolerance: tolerance must be finite and non-negative"

// Option configures a Network.
type Option func(*Options)

// Options holds the resolved Network configuration.
type Options struct {
	tolerance float64
	logger    *zap.Logger
}

// DefaultOptions returns DefaultTolerance and a no-op logger.
func DefaultOptions() Options {
	return Options{tolerance: DefaultTolerance, logger: zap.NewNop()}
}

// WithTolerance sets the column-sum tolerance. Panics on a negative or
// non-finite value.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// SPDX-License-Identifier: MIT

package factor

import "math"

// DefaultEpsilon is the total-mass threshold used by Normalize. Zero-probability
// evidence yields an exact 0.0 sum, so the threshold only needs to sit above it.
const DefaultEpsilon = 1e-300

const panicEpsilonInvalid = "factor: WithEpsilon: eps must be finite and non-negative"

// Option configures numeric policy of Normalize.
type Option func(*Options)

// Options holds the resolved numeric policy.
type Options struct {
	eps float64
}

// DefaultOptions returns Options with DefaultEpsilon.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// WithEpsilon sets the degenerate-mass threshold. It panics on a negative or
// non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon reports the configured threshold.
func (o Options) Epsilon() float64 { return o.eps }

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

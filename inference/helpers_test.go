package inference_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/internal/fixtures"
	"github.com/katalvlaran/bayesnet/network"
)

const tol = 1e-9

// engine builds a VariableElimination over a fixture network.
func engine(t testing.TB, build func(...network.Option) (*network.Network, error), opts ...inference.Option) *inference.VariableElimination {
	t.Helper()
	n, err := build()
	require.NoError(t, err)
	ve, err := inference.NewVariableElimination(n, opts...)
	require.NoError(t, err)

	return ve
}

func alarmEngine(t testing.TB, opts ...inference.Option) *inference.VariableElimination {
	return engine(t, fixtures.Alarm, opts...)
}

func sprinklerEngine(t testing.TB, opts ...inference.Option) *inference.VariableElimination {
	return engine(t, fixtures.Sprinkler, opts...)
}

func weatherEngine(t testing.TB, opts ...inference.Option) *inference.VariableElimination {
	return engine(t, fixtures.Weather, opts...)
}

// prob reads one entry of f by positional states.
func prob(t testing.TB, f *factor.Factor, states ...int) float64 {
	t.Helper()
	p, err := f.Value(states...)
	require.NoError(t, err)

	return p
}

// permutations returns every ordering of xs.
func permutations(xs []string) [][]string {
	if len(xs) <= 1 {
		return [][]string{append([]string(nil), xs...)}
	}
	var out [][]string
	for i := range xs {
		rest := make([]string, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{xs[i]}, p...))
		}
	}

	return out
}

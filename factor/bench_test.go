package factor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/variable"
)

// BenchmarkMultiply measures the product of two 8-variable binary factors
// sharing 4 variables (a 4096-entry result).
func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var left, right []variable.Variable
	for i := 0; i < 8; i++ {
		left = append(left, variable.Variable{Name: fmt.Sprintf("V%d", i), Card: 2})
		right = append(right, variable.Variable{Name: fmt.Sprintf("V%d", i+4), Card: 2})
	}
	fa := randomFactor(b, rng, left...)
	fb := randomFactor(b, rng, right...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = factor.Multiply(fa, fb)
	}
}

// BenchmarkSumOut measures eliminating the middle variable of a 12-variable factor.
func BenchmarkSumOut(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	var scope []variable.Variable
	for i := 0; i < 12; i++ {
		scope = append(scope, variable.Variable{Name: fmt.Sprintf("V%d", i), Card: 2})
	}
	f := randomFactor(b, rng, scope...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = factor.SumOut(f, "V6")
	}
}

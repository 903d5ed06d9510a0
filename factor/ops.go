// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bayesnet/variable"
)

// Multiply returns the factor product a·b.
//
// The result scope is a.Scope() followed by the variables of b.Scope() not
// already present, in b's order. Each entry is a(x|a) * b(x|b) where x|a is
// the projection of the joint assignment onto a's scope.
//
// Steps:
//  1. Build the union scope, rejecting cardinality disagreements.
//  2. Map every union position to its stride in a and in b (0 if absent).
//  3. Walk the union table with an odometer, moving the a/b offsets
//     incrementally instead of recomputing them.
//
// Errors: ErrNilFactor, ErrCardinalityMismatch.
// Complexity: O(|union table| + |union scope|).
func Multiply(a, b *Factor) (*Factor, error) {
	if a == nil || b == nil {
		return nil, ErrNilFactor
	}

	// 1) union scope
	scope := cloneScope(a.scope)
	for _, v := range b.scope {
		if i := a.position(v.Name); i >= 0 {
			if a.scope[i].Card != v.Card {
				return nil, fmt.Errorf("%w: %q has cardinality %d and %d",
					ErrCardinalityMismatch, v.Name, a.scope[i].Card, v.Card)
			}
			continue
		}
		scope = append(scope, v)
	}

	// 2) stride maps
	sa := make([]int, len(scope))
	sb := make([]int, len(scope))
	size := 1
	for i, v := range scope {
		if j := a.position(v.Name); j >= 0 {
			sa[i] = a.strides[j]
		}
		if j := b.position(v.Name); j >= 0 {
			sb[i] = b.strides[j]
		}
		size *= v.Card
	}

	// 3) odometer walk
	out := make([]float64, size)
	assign := make([]int, len(scope))
	ia, ib := 0, 0
	for k := range out {
		out[k] = a.values[ia] * b.values[ib]
		for i := len(scope) - 1; i >= 0; i-- {
			assign[i]++
			ia += sa[i]
			ib += sb[i]
			if assign[i] < scope[i].Card {
				break
			}
			// wrap this digit and carry into the next one
			ia -= sa[i] * scope[i].Card
			ib -= sb[i] * scope[i].Card
			assign[i] = 0
		}
	}

	return build(scope, out), nil
}

// Product multiplies all fs left to right. With no operands it returns the
// scalar 1 (the multiplicative identity).
// Errors: ErrNilFactor, ErrCardinalityMismatch.
func Product(fs ...*Factor) (*Factor, error) {
	if len(fs) == 0 {
		return Scalar(1), nil
	}
	acc := fs[0]
	if acc == nil {
		return nil, ErrNilFactor
	}
	var err error
	for _, f := range fs[1:] {
		if acc, err = Multiply(acc, f); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// SumOut marginalizes name out of f. If name is not in the scope, f itself is
// returned unchanged; this keeps elimination loops free of membership checks.
// Complexity: O(|f|).
func SumOut(f *Factor, name string) *Factor {
	pos := f.position(name)
	if pos < 0 {
		return f
	}

	// Output scope drops pos; so[i] is the output stride for input position i.
	scope := make([]variable.Variable, 0, len(f.scope)-1)
	scope = append(scope, f.scope[:pos]...)
	scope = append(scope, f.scope[pos+1:]...)
	res := build(scope, make([]float64, len(f.values)/f.scope[pos].Card))

	so := make([]int, len(f.scope))
	for i, j := 0, 0; i < len(f.scope); i++ {
		if i == pos {
			continue
		}
		so[i] = res.strides[j]
		j++
	}

	assign := make([]int, len(f.scope))
	io := 0
	for _, p := range f.values {
		res.values[io] += p
		for i := len(f.scope) - 1; i >= 0; i-- {
			assign[i]++
			io += so[i]
			if assign[i] < f.scope[i].Card {
				break
			}
			io -= so[i] * f.scope[i].Card
			assign[i] = 0
		}
	}

	return res
}

// MaxOut max-marginalizes name out of f: each entry of the result is the
// maximum over the states of name. Absent names return f unchanged.
// Complexity: O(|f|).
func MaxOut(f *Factor, name string) *Factor {
	pos := f.position(name)
	if pos < 0 {
		return f
	}
	card := f.scope[pos].Card
	stride := f.strides[pos]

	scope := make([]variable.Variable, 0, len(f.scope)-1)
	scope = append(scope, f.scope[:pos]...)
	scope = append(scope, f.scope[pos+1:]...)
	out := make([]float64, len(f.values)/card)

	// blocks of card*stride entries; within a block, name advances by stride
	block := card * stride
	for b, k := 0, 0; b < len(f.values); b += block {
		for off := 0; off < stride; off++ {
			m := f.values[b+off]
			for s := 1; s < card; s++ {
				if p := f.values[b+off+s*stride]; p > m {
					m = p
				}
			}
			out[k] = m
			k++
		}
	}

	return build(scope, out)
}

// Marginalize sums out every name in order. Names not in scope are skipped.
func Marginalize(f *Factor, names ...string) *Factor {
	for _, n := range names {
		f = SumOut(f, n)
	}

	return f
}

// Reduce conditions f on evidence: rows inconsistent with the evidence are
// dropped and the evidence variables leave the scope. Evidence on variables
// outside the scope has no effect.
//
// Errors: ErrNilFactor; variable.ErrStateOutOfRange for a state outside the
// domain of an in-scope variable.
// Complexity: O(|result| + |scope|).
func Reduce(f *Factor, evidence map[string]int) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	// 1) split the scope into fixed (observed) and free positions
	base := 0
	keep := make([]int, 0, len(f.scope))
	for i, v := range f.scope {
		s, observed := evidence[v.Name]
		if !observed {
			keep = append(keep, i)
			continue
		}
		if err := v.CheckState(s); err != nil {
			return nil, fmt.Errorf("factor: Reduce: %w", err)
		}
		base += s * f.strides[i]
	}
	if len(keep) == len(f.scope) {
		return f, nil // nothing observed
	}

	// 2) gather the slice of the table at offset base
	scope := make([]variable.Variable, len(keep))
	size := 1
	for j, i := range keep {
		scope[j] = f.scope[i]
		size *= f.scope[i].Card
	}
	out := make([]float64, size)
	assign := make([]int, len(keep))
	idx := base
	for k := range out {
		out[k] = f.values[idx]
		for j := len(keep) - 1; j >= 0; j-- {
			i := keep[j]
			assign[j]++
			idx += f.strides[i]
			if assign[j] < scope[j].Card {
				break
			}
			idx -= f.strides[i] * scope[j].Card
			assign[j] = 0
		}
	}

	return build(scope, out), nil
}

// Normalize divides every entry by the total mass.
//
// Errors: ErrNilFactor; ErrDegenerate when the mass is <= epsilon
// (DefaultEpsilon unless WithEpsilon is given).
func Normalize(f *Factor, opts ...Option) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	o := gatherOptions(opts)
	total := floats.Sum(f.values)
	if !(total > o.eps) {
		return nil, fmt.Errorf("%w: total mass %g over %v", ErrDegenerate, total, f.scope)
	}
	out := make([]float64, len(f.values))
	copy(out, f.values)
	floats.Scale(1/total, out)

	return build(cloneScope(f.scope), out), nil
}

// Reorder returns f with its scope permuted to names. names must be a
// permutation of the scope names.
//
// Errors: ErrNilFactor, ErrScopeMismatch.
// Complexity: O(|f|).
func Reorder(f *Factor, names []string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if len(names) != len(f.scope) {
		return nil, fmt.Errorf("%w: %v is not a permutation of %v", ErrScopeMismatch, names, f.Names())
	}
	scope := make([]variable.Variable, len(names))
	src := make([]int, len(names)) // input stride for output position
	identity := true
	for j, n := range names {
		i := f.position(n)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q not in scope %v", ErrScopeMismatch, n, f.Names())
		}
		for _, prev := range names[:j] {
			if prev == n {
				return nil, fmt.Errorf("%w: %q listed twice", ErrScopeMismatch, n)
			}
		}
		scope[j] = f.scope[i]
		src[j] = f.strides[i]
		identity = identity && i == j
	}
	if identity {
		return f, nil
	}

	out := make([]float64, len(f.values))
	assign := make([]int, len(scope))
	idx := 0
	for k := range out {
		out[k] = f.values[idx]
		for j := len(scope) - 1; j >= 0; j-- {
			assign[j]++
			idx += src[j]
			if assign[j] < scope[j].Card {
				break
			}
			idx -= src[j] * scope[j].Card
			assign[j] = 0
		}
	}

	return build(scope, out), nil
}

// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bayesnet/variable"
)

// Factor is an immutable table over an ordered scope of distinct variables.
//
// The zero value is not usable; construct with New or Scalar. A *Factor may
// be shared between goroutines freely since no method mutates it.
type Factor struct {
	scope   []variable.Variable // ordered, distinct
	strides []int               // strides[i] = ∏ Card of scope[i+1:]
	values  []float64           // row-major, len = ∏ Card
}

// New builds a Factor over scope with a copy of values.
//
// Steps:
//  1. Validate each variable (non-empty name, Card >= 1) and name uniqueness.
//  2. Validate len(values) == ∏ Card.
//  3. Validate every entry is finite and >= 0.
//  4. Copy values and compute strides.
//
// Complexity: O(|scope| + |values|).
func New(scope []variable.Variable, values []float64) (*Factor, error) {
	// 1) scope validation
	seen := make(map[string]struct{}, len(scope))
	size := 1
	for _, v := range scope {
		if _, err := variable.New(v.Name, v.Card); err != nil {
			return nil, fmt.Errorf("factor: New: %w", err)
		}
		if _, dup := seen[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
		}
		seen[v.Name] = struct{}{}
		size *= v.Card
	}
	// 2) shape
	if len(values) != size {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrShape, len(values), size)
	}
	// 3) numeric policy
	for i, p := range values {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: entry %d", ErrNaNInf, i)
		}
		if p < 0 {
			return nil, fmt.Errorf("%w: entry %d = %g", ErrNegativeValue, i, p)
		}
	}
	// 4) own the data
	vals := make([]float64, len(values))
	copy(vals, values)

	return build(cloneScope(scope), vals), nil
}

// Scalar returns a factor with an empty scope holding v.
func Scalar(v float64) *Factor {
	return build(nil, []float64{v})
}

// build wires strides for an already-validated scope/values pair and takes
// ownership of both slices.
func build(scope []variable.Variable, values []float64) *Factor {
	strides := make([]int, len(scope))
	s := 1
	for i := len(scope) - 1; i >= 0; i-- {
		strides[i] = s
		s *= scope[i].Card
	}

	return &Factor{scope: scope, strides: strides, values: values}
}

func cloneScope(scope []variable.Variable) []variable.Variable {
	if len(scope) == 0 {
		return nil
	}
	out := make([]variable.Variable, len(scope))
	copy(out, scope)

	return out
}

// Scope returns a copy of the ordered scope.
func (f *Factor) Scope() []variable.Variable {
	return cloneScope(f.scope)
}

// Names returns the scope variable names in order.
func (f *Factor) Names() []string {
	out := make([]string, len(f.scope))
	for i, v := range f.scope {
		out[i] = v.Name
	}

	return out
}

// Cards returns the scope cardinalities in order.
func (f *Factor) Cards() []int {
	out := make([]int, len(f.scope))
	for i, v := range f.scope {
		out[i] = v.Card
	}

	return out
}

// Len returns the number of table entries.
func (f *Factor) Len() int { return len(f.values) }

// IsScalar reports whether the scope is empty.
func (f *Factor) IsScalar() bool { return len(f.scope) == 0 }

// Values returns a copy of the row-major table.
func (f *Factor) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// Contains reports whether name is in the scope.
func (f *Factor) Contains(name string) bool {
	return f.position(name) >= 0
}

// Variable returns the scope variable called name.
func (f *Factor) Variable(name string) (variable.Variable, bool) {
	if i := f.position(name); i >= 0 {
		return f.scope[i], true
	}

	return variable.Variable{}, false
}

// position returns the scope index of name or -1. Scopes are tiny, so a
// linear scan beats a map here.
func (f *Factor) position(name string) int {
	for i, v := range f.scope {
		if v.Name == name {
			return i
		}
	}

	return -1
}

// Value returns the entry for a positional assignment (one state per scope
// variable, in scope order).
func (f *Factor) Value(assignment ...int) (float64, error) {
	if len(assignment) != len(f.scope) {
		return 0, fmt.Errorf("%w: got %d states for %d variables", ErrScopeMismatch, len(assignment), len(f.scope))
	}
	idx := 0
	for i, s := range assignment {
		if err := f.scope[i].CheckState(s); err != nil {
			return 0, fmt.Errorf("factor: Value: %w", err)
		}
		idx += s * f.strides[i]
	}

	return f.values[idx], nil
}

// ValueOf returns the entry for a named assignment covering exactly the scope.
func (f *Factor) ValueOf(assignment map[string]int) (float64, error) {
	if len(assignment) != len(f.scope) {
		return 0, fmt.Errorf("%w: assignment has %d variables, scope has %d", ErrScopeMismatch, len(assignment), len(f.scope))
	}
	states := make([]int, len(f.scope))
	for i, v := range f.scope {
		s, ok := assignment[v.Name]
		if !ok {
			return 0, fmt.Errorf("%w: missing %q", ErrScopeMismatch, v.Name)
		}
		states[i] = s
	}

	return f.Value(states...)
}

// Sum returns the total mass of the table.
func (f *Factor) Sum() float64 {
	return floats.Sum(f.values)
}

// Argmax returns the first (lowest row-major index) assignment holding the
// maximum entry, together with that entry.
func (f *Factor) Argmax() ([]int, float64) {
	best := floats.MaxIdx(f.values)

	return f.assignmentAt(best), f.values[best]
}

// Each calls fn for every entry in row-major order. The assignment slice is
// reused between calls; copy it if it must outlive fn.
func (f *Factor) Each(fn func(assignment []int, value float64)) {
	assign := make([]int, len(f.scope))
	for _, p := range f.values {
		fn(assign, p)
		// advance odometer, last variable fastest
		for i := len(f.scope) - 1; i >= 0; i-- {
			assign[i]++
			if assign[i] < f.scope[i].Card {
				break
			}
			assign[i] = 0
		}
	}
}

// assignmentAt decodes a row-major index into per-variable states.
func (f *Factor) assignmentAt(idx int) []int {
	out := make([]int, len(f.scope))
	for i := range f.scope {
		out[i] = idx / f.strides[i]
		idx %= f.strides[i]
	}

	return out
}

// String renders the scope and table size, e.g. "Factor[A(2) B(3)] 6 entries".
func (f *Factor) String() string {
	return fmt.Sprintf("Factor%v %d entries", f.scope, len(f.values))
}

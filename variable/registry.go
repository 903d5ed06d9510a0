// SPDX-License-Identifier: MIT

package variable

import "fmt"

// Registry is a declaration-ordered catalog of Variables.
//
// Indices returned by Add and Index are dense (0..Len()-1) and never change.
// A Registry is not safe for concurrent mutation; concurrent reads are safe
// once mutation has stopped.
type Registry struct {
	vars  []Variable
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add declares a variable and returns its index.
//
// Errors:
//   - ErrEmptyName, ErrBadCardinality from New.
//   - ErrDuplicate if name is already declared.
//
// Complexity: O(1) amortized.
func (r *Registry) Add(name string, card int) (int, error) {
	v, err := New(name, card)
	if err != nil {
		return -1, err
	}
	if _, exists := r.index[name]; exists {
		return -1, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	idx := len(r.vars)
	r.vars = append(r.vars, v)
	r.index[name] = idx

	return idx, nil
}

// Index returns the dense index of name, or ErrUnknown.
func (r *Registry) Index(name string) (int, error) {
	idx, ok := r.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknown, name)
	}

	return idx, nil
}

// Has reports whether name is declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Lookup returns the Variable named name, or ErrUnknown.
func (r *Registry) Lookup(name string) (Variable, error) {
	idx, err := r.Index(name)
	if err != nil {
		return Variable{}, err
	}

	return r.vars[idx], nil
}

// At returns the variable at index i. It panics if i is out of range,
// like slice indexing; indices come from Add or Index.
func (r *Registry) At(i int) Variable {
	return r.vars[i]
}

// Len returns the number of declared variables.
func (r *Registry) Len() int {
	return len(r.vars)
}

// Variables returns a copy of all variables in declaration order.
func (r *Registry) Variables() []Variable {
	out := make([]Variable, len(r.vars))
	copy(out, r.vars)

	return out
}

// Names returns all variable names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.vars))
	for i, v := range r.vars {
		out[i] = v.Name
	}

	return out
}

// Clone returns an independent copy of the registry.
// Complexity: O(V).
func (r *Registry) Clone() *Registry {
	c := &Registry{
		vars:  make([]Variable, len(r.vars)),
		index: make(map[string]int, len(r.index)),
	}
	copy(c.vars, r.vars)
	for k, v := range r.index {
		c.index[k] = v
	}

	return c
}

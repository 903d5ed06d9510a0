// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/dag"
	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/variable"
)

// Model is a validated, immutable Bayesian network. All methods are safe for
// concurrent use.
type Model struct {
	reg   *variable.Registry
	graph *dag.Graph
	cpds  []*factor.Factor // by variable index; scope [target, evidence...]
	topo  []int
}

// freeze snapshots the builder state into a Model. Caller holds n.mu and has
// already validated the network.
func (n *Network) freeze() (*Model, error) {
	m := &Model{
		reg:   n.reg.Clone(),
		graph: n.graph.Clone(),
		cpds:  make([]*factor.Factor, n.reg.Len()),
	}
	for idx, cpd := range n.cpds {
		scope := make([]variable.Variable, 0, len(cpd.Evidence)+1)
		scope = append(scope, m.reg.At(idx))
		for _, e := range cpd.Evidence {
			pv, err := m.reg.Lookup(e)
			if err != nil {
				return nil, err
			}
			scope = append(scope, pv)
		}
		f, err := factor.New(scope, cpd.flat())
		if err != nil {
			return nil, fmt.Errorf("network: freeze %q: %w", cpd.Variable, err)
		}
		m.cpds[idx] = f
	}
	topo, err := m.graph.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, err)
	}
	m.topo = topo

	return m, nil
}

// Len returns the number of variables.
func (m *Model) Len() int { return m.reg.Len() }

// Variables returns the variables in declaration order.
func (m *Model) Variables() []variable.Variable { return m.reg.Variables() }

// Names returns the variable names in declaration order.
func (m *Model) Names() []string { return m.reg.Names() }

// Variable looks up a variable by name.
func (m *Model) Variable(name string) (variable.Variable, error) {
	v, err := m.reg.Lookup(name)
	if err != nil {
		return variable.Variable{}, fmt.Errorf("%w: %v", ErrUnknownVariable, err)
	}

	return v, nil
}

// Has reports whether name is a model variable.
func (m *Model) Has(name string) bool { return m.reg.Has(name) }

// CPD returns the frozen CPD factor of name, scope [name, parents...].
func (m *Model) CPD(name string) (*factor.Factor, error) {
	idx, err := m.reg.Index(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariable, err)
	}

	return m.cpds[idx], nil
}

// Factors returns every CPD factor in declaration order. The slice is a copy;
// the factors themselves are immutable and shared.
func (m *Model) Factors() []*factor.Factor {
	out := make([]*factor.Factor, len(m.cpds))
	copy(out, m.cpds)

	return out
}

// Parents returns the parents of name in CPD evidence order.
func (m *Model) Parents(name string) ([]string, error) {
	f, err := m.CPD(name)
	if err != nil {
		return nil, err
	}

	return f.Names()[1:], nil
}

// Children returns the children of name in edge insertion order.
func (m *Model) Children(name string) ([]string, error) {
	idx, err := m.reg.Index(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariable, err)
	}

	return m.graph.PathNames(m.graph.Children(idx)), nil
}

// TopologicalOrder returns all variable names, parents before children, ties
// in declaration order.
func (m *Model) TopologicalOrder() []string {
	return m.graph.PathNames(m.topo)
}

// Ancestors returns the ancestral closure of names (names included) in
// declaration order.
func (m *Model) Ancestors(names ...string) ([]string, error) {
	seeds := make([]int, 0, len(names))
	for _, nm := range names {
		idx, err := m.reg.Index(nm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownVariable, err)
		}
		seeds = append(seeds, idx)
	}
	mask := m.graph.Ancestors(seeds...)
	out := make([]string, 0, len(names))
	for i, in := range mask {
		if in {
			out = append(out, m.graph.Name(i))
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/bayesnet/dag"
	"github.com/katalvlaran/bayesnet/variable"
)

// Network is the mutable construction-time view of a Bayesian network.
//
// mu guards every field; model caches the last successful validation and is
// dropped by any mutation.
type Network struct {
	mu    sync.RWMutex
	opts  Options
	reg   *variable.Registry
	graph *dag.Graph
	cpds  []*TabularCPD // by variable index; nil = not set yet
	model *Model
}

// New returns an empty network.
func New(opts ...Option) *Network {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Network{
		opts:  o,
		reg:   variable.NewRegistry(),
		graph: dag.New(),
	}
}

// AddVariable declares a variable with card states.
// Errors: variable.ErrEmptyName, variable.ErrBadCardinality, variable.ErrDuplicate.
func (n *Network) AddVariable(name string, card int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := n.reg.Add(name, card); err != nil {
		return err
	}
	// registry and graph share the same dense index space
	if _, err := n.graph.AddVertex(name); err != nil {
		return err
	}
	n.cpds = append(n.cpds, nil)
	n.model = nil

	return nil
}

// AddEdge declares parent→child. Both variables must already exist.
// Acyclicity is checked by CheckModel, not here.
//
// Errors: ErrUnknownVariable, dag.ErrLoopNotAllowed, dag.ErrDuplicateEdge.
func (n *Network) AddEdge(parent, child string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.graph.AddEdge(parent, child); err != nil {
		if errors.Is(err, dag.ErrVertexNotFound) {
			return fmt.Errorf("%w: %v", ErrUnknownVariable, err)
		}

		return err
	}
	n.model = nil

	return nil
}

// SetCPD attaches (or replaces) the CPD of cpd.Variable. The table is copied
// and validated later by CheckModel.
//
// Errors: ErrNilCPD, ErrUnknownVariable.
func (n *Network) SetCPD(cpd *TabularCPD) error {
	if cpd == nil {
		return ErrNilCPD
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	idx, err := n.reg.Index(cpd.Variable)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownVariable, err)
	}
	n.cpds[idx] = cpd.Clone()
	n.model = nil

	return nil
}

// AddCPDs calls SetCPD for each cpd, stopping at the first error.
func (n *Network) AddCPDs(cpds ...*TabularCPD) error {
	for _, c := range cpds {
		if err := n.SetCPD(c); err != nil {
			return err
		}
	}

	return nil
}

// Nodes returns variable names in declaration order.
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.reg.Names()
}

// Variables returns the declared variables in declaration order.
func (n *Network) Variables() []variable.Variable {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.reg.Variables()
}

// Edges returns every parent→child pair in insertion order.
func (n *Network) Edges() [][2]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	edges := n.graph.Edges()
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{n.graph.Name(e.From), n.graph.Name(e.To)}
	}

	return out
}

// CPD returns a copy of the raw CPD attached to name.
func (n *Network) CPD(name string) (*TabularCPD, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	idx, err := n.reg.Index(name)
	if err != nil || n.cpds[idx] == nil {
		return nil, false
	}

	return n.cpds[idx].Clone(), true
}

// CheckModel validates the network. It returns nil or a *ValidationError
// listing every violation.
func (n *Network) CheckModel() error {
	_, err := n.Model()
	return err
}

// Model validates the network and returns its frozen, query-ready form.
// The result is cached until the next mutation.
func (n *Network) Model() (*Model, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.model != nil {
		return n.model, nil
	}
	if vs := n.validate(); len(vs) > 0 {
		n.opts.logger.Debug("network validation failed",
			zap.Int("violations", len(vs)),
			zap.String("first", vs[0].Error()))

		return nil, &ValidationError{Violations: vs}
	}
	m, err := n.freeze()
	if err != nil {
		return nil, err
	}
	n.model = m
	n.opts.logger.Debug("network validated",
		zap.Int("variables", n.reg.Len()),
		zap.Int("edges", n.graph.EdgeCount()))

	return m, nil
}

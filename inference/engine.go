// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/network"
)

// VariableElimination answers queries against one frozen network.Model.
// It is safe for concurrent use.
type VariableElimination struct {
	model *network.Model
	opts  Options
	cards map[string]int
	cache *orderCache // nil when disabled
}

// NewVariableElimination validates net and builds an engine over its frozen
// model. Later mutations of net do not affect the engine.
//
// Errors: ErrNilNetwork; *network.ValidationError (matches
// network.ErrInvalidModel) when net fails CheckModel.
func NewVariableElimination(net *network.Network, opts ...Option) (*VariableElimination, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	m, err := net.Model()
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}

	return NewFromModel(m, opts...)
}

// NewFromModel builds an engine over an already frozen model.
func NewFromModel(m *network.Model, opts ...Option) (*VariableElimination, error) {
	if m == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ve := &VariableElimination{
		model: m,
		opts:  o,
		cards: make(map[string]int, m.Len()),
	}
	for _, v := range m.Variables() {
		ve.cards[v.Name] = v.Card
	}
	if o.cacheOrders {
		ve.cache = &orderCache{}
	}

	return ve, nil
}

// Model returns the frozen model the engine queries.
func (ve *VariableElimination) Model() *network.Model { return ve.model }

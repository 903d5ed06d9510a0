// SPDX-License-Identifier: MIT

package variable

import (
	"errors"
	"fmt"
)

// Sentinel errors for variable declaration and lookup.
var (
	// ErrEmptyName indicates a variable was declared without a name.
	ErrEmptyName = errors.New("variable: name is empty")

	// ErrBadCardinality indicates a cardinality smaller than one.
	ErrBadCardinality = errors.New("variable: cardinality must be >= 1")

	// ErrDuplicate indicates a second declaration of an existing name.
	ErrDuplicate = errors.New("variable: duplicate name")

	// ErrUnknown indicates a name that is not present in the registry.
	ErrUnknown = errors.New("variable: unknown name")

	// ErrStateOutOfRange indicates a state index outside 0..Card-1.
	ErrStateOutOfRange = errors.New("variable: state out of range")
)

// Variable is a discrete random variable. It is a small value type and is
// copied freely; two Variables are the same variable iff their names match.
type Variable struct {
	// Name uniquely identifies the variable within a network.
	Name string

	// Card is the number of discrete states.
	Card int
}

// New validates and returns a Variable.
// Complexity: O(1).
func New(name string, card int) (Variable, error) {
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if card < 1 {
		return Variable{}, fmt.Errorf("%w: %q has cardinality %d", ErrBadCardinality, name, card)
	}

	return Variable{Name: name, Card: card}, nil
}

// CheckState reports ErrStateOutOfRange if state is not a valid index of v.
func (v Variable) CheckState(state int) error {
	if state < 0 || state >= v.Card {
		return fmt.Errorf("%w: %s=%d (cardinality %d)", ErrStateOutOfRange, v.Name, state, v.Card)
	}

	return nil
}

// String renders the variable as "Name(Card)".
func (v Variable) String() string {
	return fmt.Sprintf("%s(%d)", v.Name, v.Card)
}

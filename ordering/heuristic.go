// SPDX-License-Identifier: MIT

package ordering

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownHeuristic indicates an unrecognised Heuristic value or name.
	ErrUnknownHeuristic = errors.New("ordering: unknown heuristic")

	// ErrMissingCardinality indicates a weighted heuristic lacks a cardinality.
	ErrMissingCardinality = errors.New("ordering: missing cardinality")
)

// Heuristic selects the greedy cost function used by Order.
type Heuristic int

const (
	// MinFill picks the variable whose elimination adds the fewest fill edges.
	MinFill Heuristic = iota

	// MinNeighbors picks the variable with the fewest neighbours.
	MinNeighbors

	// MinWeight picks the variable whose neighbours have the smallest
	// product of cardinalities.
	MinWeight

	// WeightedMinFill picks the variable minimising Σ card(u)·card(v) over
	// the fill edges u–v its elimination would add.
	WeightedMinFill
)

var heuristicNames = [...]string{
	MinFill:         "min-fill",
	MinNeighbors:    "min-neighbors",
	MinWeight:       "min-weight",
	WeightedMinFill: "weighted-min-fill",
}

// Heuristics lists every supported value in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{MinFill, MinNeighbors, MinWeight, WeightedMinFill}
}

// String returns the kebab-case name, e.g. "min-fill".
func (h Heuristic) String() string {
	if h.Valid() {
		return heuristicNames[h]
	}

	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool {
	return h >= MinFill && h <= WeightedMinFill
}

// weighted reports whether the cost depends on cardinalities.
func (h Heuristic) weighted() bool {
	return h == MinWeight || h == WeightedMinFill
}

// ParseHeuristic accepts the String form case-insensitively; underscores and
// the CamelCase spellings ("MinFill") are also accepted.
func ParseHeuristic(s string) (Heuristic, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for h, name := range heuristicNames {
		if key == name || key == strings.ReplaceAll(name, "-", "") {
			return Heuristic(h), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Set implements pflag.Value so a Heuristic can back a command-line flag.
func (h *Heuristic) Set(s string) error {
	v, err := ParseHeuristic(s)
	if err != nil {
		return err
	}
	*h = v

	return nil
}

// Type implements pflag.Value.
func (h *Heuristic) Type() string { return "heuristic" }

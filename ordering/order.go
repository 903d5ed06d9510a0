// SPDX-License-Identifier: MIT

package ordering

import (
	"fmt"
	"sort"
)

// Order returns an elimination order for the variables in eliminate.
//
// scopes are the factor scopes that define the interaction graph; variables
// outside eliminate (query or evidence variables) shape the costs but are
// never emitted. cards is consulted only by MinWeight and WeightedMinFill.
//
// Steps:
//  1. Build the interaction graph; add eliminate variables no scope mentions
//     as isolated vertices.
//  2. Repeat: score every remaining candidate, take the cheapest (smallest
//     name on ties), connect its neighbours, drop it.
//
// Errors: ErrUnknownHeuristic, ErrMissingCardinality.
func Order(eliminate []string, scopes [][]string, cards map[string]int, h Heuristic) ([]string, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, h)
	}

	// 1) graph and sorted, de-duplicated candidate list
	g := newInteraction(scopes)
	seen := make(map[string]struct{}, len(eliminate))
	candidates := make([]string, 0, len(eliminate))
	for _, v := range eliminate {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		g.ensure(v)
		candidates = append(candidates, v)
	}
	sort.Strings(candidates)

	if h.weighted() {
		for v := range g.adj {
			if c, ok := cards[v]; !ok || c < 1 {
				return nil, fmt.Errorf("%w: %q", ErrMissingCardinality, v)
			}
		}
	}

	// 2) greedy loop
	order := make([]string, 0, len(candidates))
	for len(candidates) > 0 {
		best := 0
		bestCost := g.cost(candidates[0], h, cards)
		for i := 1; i < len(candidates); i++ {
			if c := g.cost(candidates[i], h, cards); c < bestCost {
				best, bestCost = i, c
			}
		}
		v := candidates[best]
		order = append(order, v)
		g.eliminate(v)
		candidates = append(candidates[:best], candidates[best+1:]...)
	}

	return order, nil
}

// InducedWidth returns the largest number of neighbours any variable has at
// the moment order eliminates it from the interaction graph of scopes.
// Variables of order that appear in no scope count as isolated.
func InducedWidth(order []string, scopes [][]string) int {
	g := newInteraction(scopes)
	width := 0
	for _, v := range order {
		g.ensure(v)
		if d := len(g.adj[v]); d > width {
			width = d
		}
		g.eliminate(v)
	}

	return width
}

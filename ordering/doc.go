// SPDX-License-Identifier: MIT

// Package ordering chooses elimination orders for variable elimination.
//
// What:
//
//   - Heuristic enumerates the greedy cost functions: MinFill (default),
//     MinNeighbors, MinWeight and WeightedMinFill.
//   - Order greedily eliminates the cheapest remaining variable of the
//     interaction graph built from a set of factor scopes.
//   - InducedWidth measures an order: the largest neighbourhood met while
//     eliminating, i.e. the scope size of the biggest intermediate factor
//     minus one.
//
// Why:
//
//	Variable elimination is exponential in the induced width of its order.
//	Finding the optimal order is NP-hard; these greedy rules are the
//	standard cheap approximations.
//
// Determinism:
//
//	Ties are broken by the lexicographically smallest variable name, so the
//	same scopes always yield the same order regardless of map iteration.
//
// Complexity:
//
//	Order runs in O(k · n · d²) for k variables to eliminate, n candidates
//	and maximum degree d.
//
// Errors:
//
//   - ErrUnknownHeuristic  - ParseHeuristic or Order with an unrecognised value.
//   - ErrMissingCardinality - a weighted heuristic met a variable without a card.
package ordering

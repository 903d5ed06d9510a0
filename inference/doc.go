// SPDX-License-Identifier: MIT

// Package inference answers exact posterior queries on a validated Bayesian
// network with the Variable Elimination algorithm.
//
// What:
//
//   - VariableElimination is built from a network.Network (validated on
//     construction) or a frozen network.Model. It never mutates the model,
//     so any number of queries may run concurrently on one engine.
//   - Query(variables, evidence) returns the normalized joint posterior over
//     variables, with the scope in the requested order.
//   - Marginals returns one posterior per variable; MAPQuery returns the most
//     probable joint assignment; QueryBatch fans requests out over a bounded
//     errgroup.
//   - EliminationOrder and InducedWidth expose what the planner decided.
//
// Algorithm (one run per query, nothing retained except the order cache):
//
//  1. Validate the request; no work happens before it passes.
//  2. Keep the CPDs of the ancestral set of query ∪ evidence (barren nodes
//     sum to one and are dropped), unless WithPruning(false).
//  3. Reduce every factor by the evidence.
//  4. Pick an order over the remaining hidden variables: explicit, cached,
//     or computed by the configured ordering.Heuristic.
//  5. For each hidden variable: multiply the factors mentioning it, sum it
//     out, put the result back into the working multiset.
//  6. Multiply what is left, reorder to the requested scope, normalize.
//
// The posterior does not depend on the elimination order; only the size of
// the intermediate factors does.
//
// Errors:
//
//   - *QueryError   - malformed request (unknown variable, out-of-range
//     evidence, query/evidence overlap, empty or duplicated query, bad order).
//   - *NumericError - the evidence has (near) zero probability under the
//     model; wraps factor.ErrDegenerate.
//   - *network.ValidationError - from NewVariableElimination on an invalid network.
//
// Observability: zap debug logs per elimination step and optional Prometheus
// metrics (see NewMetrics).
package inference

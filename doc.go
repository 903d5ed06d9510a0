// SPDX-License-Identifier: MIT

// Package bayesnet is an exact-inference engine for discrete Bayesian
// networks built on Variable Elimination.
//
// The module is split into small packages, bottom-up:
//
//	variable/    — named discrete variables (name + cardinality)
//	factor/      — immutable factor tables: product, sum/max-out, reduce, normalize
//	dag/         — index-arena DAG: deterministic topological order, cycles, ancestors
//	network/     — network builder, CPD validation, frozen Model snapshots
//	ordering/    — elimination-order heuristics (min-fill, min-neighbors, ...)
//	inference/   — Variable Elimination: posteriors, marginals, MAP, batches
//	netfile/     — YAML network documents (load, build, encode)
//	cmd/bnquery/ — command-line front end: validate, order, query
//
// Quick ASCII example (the classic burglary network):
//
//	[Burglary]   [Earthquake]
//	        \     /
//	        [Alarm]
//	        /     \
//	[JohnCalls]  [MaryCalls]
//
// Build the network, freeze it into an engine, then ask for posteriors:
//
//	ve, err := inference.NewVariableElimination(net)
//	post, err := ve.Query([]string{"Burglary"}, map[string]int{"JohnCalls": 1, "MaryCalls": 1})
//	p, _ := post.Value(1) // ≈ 0.2842
//
// Runnable scenarios live under examples/.
package bayesnet

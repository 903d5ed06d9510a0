// SPDX-License-Identifier: MIT

// Package netfile reads and writes Bayesian network definitions as YAML.
//
// A document lists variables (name, cardinality, optional state labels),
// directed edges as [parent, child] pairs and one CPD per variable in the
// column convention of network.TabularCPD:
//
//	name: rain
//	variables:
//	  - {name: Rain, card: 2, states: [dry, wet]}
//	  - {name: Grass, card: 2}
//	edges:
//	  - [Rain, Grass]
//	cpds:
//	  - variable: Rain
//	    values: [[0.8], [0.2]]
//	  - variable: Grass
//	    evidence: [Rain]
//	    values:
//	      - [0.9, 0.2]
//	      - [0.1, 0.8]
//
// evidence_card may be omitted; it is then taken from the declared
// cardinalities. Decoding is strict: unknown keys are rejected.
//
// Decode only checks the document shape. Probabilistic validity is the job
// of network.CheckModel, which Build leaves to the caller.
package netfile

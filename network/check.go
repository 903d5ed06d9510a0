// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validate runs every model check and returns all violations.
// Caller holds n.mu.
//
// Per variable (declaration order):
//  1. CPD present.
//  2. CPD card equals declared card.
//  3. Evidence lists consistent; evidence set equals graph parents;
//     evidence cards equal declared parent cards.
//  4. Table shape: Card rows × ∏ EvidenceCard columns.
//  5. Entries finite and non-negative.
//  6. Every column sums to 1 within tolerance.
//
// Steps 5-6 run only when the shape is sound. Finally the whole graph is
// checked for cycles.
func (n *Network) validate() []Violation {
	var out []Violation
	add := func(name string, kind error, format string, args ...interface{}) {
		out = append(out, Violation{Variable: name, Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	for idx, v := range n.reg.Variables() {
		cpd := n.cpds[idx]
		// 1) presence
		if cpd == nil {
			add(v.Name, ErrMissingCPD, "no CPD attached")
			continue
		}
		// 2) target cardinality
		if cpd.Card != v.Card {
			add(v.Name, ErrCardinalityMismatch, "CPD card %d, declared %d", cpd.Card, v.Card)
		}
		// 3) scope against the graph
		shapeOK := n.checkScope(v.Name, idx, cpd, add)
		// 4) table shape
		if len(cpd.Values) != cpd.Card {
			add(v.Name, ErrTableShape, "%d rows, want %d", len(cpd.Values), cpd.Card)
			shapeOK = false
		}
		cols := cpd.Columns()
		for r, row := range cpd.Values {
			if len(row) != cols {
				add(v.Name, ErrTableShape, "row %d has %d columns, want %d", r, len(row), cols)
				shapeOK = false
			}
		}
		if !shapeOK {
			continue
		}
		// 5) entries
		entriesOK := true
		for r, row := range cpd.Values {
			for c, p := range row {
				if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
					add(v.Name, ErrInvalidProbability, "entry [%d][%d] = %g", r, c, p)
					entriesOK = false
				}
			}
		}
		if !entriesOK {
			continue
		}
		// 6) stochastic columns
		col := make([]float64, len(cpd.Values))
		for c := 0; c < cols; c++ {
			for r := range cpd.Values {
				col[r] = cpd.Values[r][c]
			}
			if s := floats.Sum(col); !scalar.EqualWithinAbs(s, 1, n.opts.tolerance) {
				add(v.Name, ErrColumnSum, "column %d sums to %g", c, s)
			}
		}
	}

	// cycle check last
	if cyc := n.graph.FindCycle(); cyc != nil {
		names := n.graph.PathNames(cyc)
		add(names[0], ErrCycle, "%s -> %s", strings.Join(names, " -> "), names[0])
	}

	return out
}

// checkScope verifies the CPD evidence against the graph parents of idx and
// the declared parent cardinalities. It reports whether the evidence lists are
// usable for a shape check.
func (n *Network) checkScope(name string, idx int, cpd *TabularCPD, add func(string, error, string, ...interface{})) bool {
	ok := true
	if len(cpd.Evidence) != len(cpd.EvidenceCard) {
		add(name, ErrTableShape, "%d evidence variables but %d evidence cards", len(cpd.Evidence), len(cpd.EvidenceCard))
		ok = false
	}

	// evidence as a set, with duplicates and self-reference rejected
	listed := make(map[string]bool, len(cpd.Evidence))
	for i, e := range cpd.Evidence {
		switch {
		case e == name:
			add(name, ErrScopeMismatch, "lists itself as evidence")
		case listed[e]:
			add(name, ErrScopeMismatch, "evidence %q listed twice", e)
		}
		listed[e] = true

		pv, err := n.reg.Lookup(e)
		if err != nil {
			add(name, ErrScopeMismatch, "evidence %q is not a declared variable", e)
			continue
		}
		if i < len(cpd.EvidenceCard) && cpd.EvidenceCard[i] != pv.Card {
			add(name, ErrCardinalityMismatch, "evidence %q card %d, declared %d", e, cpd.EvidenceCard[i], pv.Card)
		}
	}

	// graph parents must appear in evidence and vice versa
	parents := make(map[string]bool)
	for _, p := range n.graph.Parents(idx) {
		pn := n.graph.Name(p)
		parents[pn] = true
		if !listed[pn] {
			add(name, ErrScopeMismatch, "graph parent %q missing from CPD evidence", pn)
		}
	}
	for _, e := range cpd.Evidence {
		if e != name && n.reg.Has(e) && !parents[e] {
			add(name, ErrScopeMismatch, "CPD evidence %q has no edge %s -> %s", e, e, name)
		}
	}

	return ok
}

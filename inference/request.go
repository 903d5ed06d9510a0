// SPDX-License-Identifier: MIT

package inference

import (
	"sort"
)

// checkRequest validates a query before any computation.
//
// Order of checks (first failure wins, so reports are deterministic):
//  1. non-empty query;
//  2. each query variable known and listed once;
//  3. each evidence variable (sorted by name) known and in range;
//  4. no query variable observed.
func (ve *VariableElimination) checkRequest(op string, query []string, evidence map[string]int) error {
	// 1) empty
	if len(query) == 0 {
		return queryErr(op, "", ErrEmptyQuery, "")
	}
	// 2) query variables
	seen := make(map[string]struct{}, len(query))
	for _, q := range query {
		if _, ok := ve.cards[q]; !ok {
			return queryErr(op, q, ErrUnknownVariable, "")
		}
		if _, dup := seen[q]; dup {
			return queryErr(op, q, ErrDuplicateVariable, "")
		}
		seen[q] = struct{}{}
	}
	// 3) evidence
	if err := ve.checkEvidence(op, evidence); err != nil {
		return err
	}
	// 4) overlap
	for _, q := range query {
		if s, observed := evidence[q]; observed {
			return queryErr(op, q, ErrQueryEvidenceOverlap, "observed as state %d", s)
		}
	}

	return nil
}

func (ve *VariableElimination) checkEvidence(op string, evidence map[string]int) error {
	for _, name := range sortedKeys(evidence) {
		card, ok := ve.cards[name]
		if !ok {
			return queryErr(op, name, ErrUnknownVariable, "evidence variable")
		}
		if s := evidence[name]; s < 0 || s >= card {
			return queryErr(op, name, ErrEvidenceOutOfRange, "state %d, cardinality %d", s, card)
		}
	}

	return nil
}

// checkOrder verifies an explicit order is a permutation of every model
// variable outside query ∪ evidence.
func (ve *VariableElimination) checkOrder(op string, order, query []string, evidence map[string]int) error {
	excluded := make(map[string]bool, len(query)+len(evidence))
	for _, q := range query {
		excluded[q] = true
	}
	for e := range evidence {
		excluded[e] = true
	}

	seen := make(map[string]bool, len(order))
	for _, v := range order {
		switch {
		case !ve.model.Has(v):
			return queryErr(op, v, ErrInvalidOrder, "unknown variable")
		case excluded[v]:
			return queryErr(op, v, ErrInvalidOrder, "query or evidence variable cannot be eliminated")
		case seen[v]:
			return queryErr(op, v, ErrInvalidOrder, "listed twice")
		}
		seen[v] = true
	}
	for _, name := range ve.model.Names() {
		if !excluded[name] && !seen[name] {
			return queryErr(op, name, ErrInvalidOrder, "missing from order")
		}
	}

	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func copyEvidence(ev map[string]int) map[string]int {
	out := make(map[string]int, len(ev))
	for k, v := range ev {
		out[k] = v
	}

	return out
}

// SPDX-License-Identifier: MIT

package inference

import (
	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/ordering"
)

// Query returns P(variables | evidence) as a normalized factor whose scope is
// variables in the given order.
//
// Errors: *QueryError (nothing is computed), *NumericError.
func (ve *VariableElimination) Query(variables []string, evidence map[string]int, opts ...QueryOption) (*factor.Factor, error) {
	return ve.run("Query", variables, evidence, gatherQueryOptions(opts))
}

// Marginals returns P(v | evidence) for each v in variables, in order.
//
// With WithEliminationOrder the order must list every variable outside
// variables ∪ evidence; each per-variable run eliminates the other query
// variables after it.
func (ve *VariableElimination) Marginals(variables []string, evidence map[string]int, opts ...QueryOption) ([]*factor.Factor, error) {
	const op = "Marginals"
	if err := ve.checkRequest(op, variables, evidence); err != nil {
		return nil, err
	}
	qo := gatherQueryOptions(opts)
	if qo.hasOrder {
		if err := ve.checkOrder(op, qo.order, variables, evidence); err != nil {
			return nil, err
		}
	}

	out := make([]*factor.Factor, len(variables))
	for i, v := range variables {
		one := qo
		if qo.hasOrder {
			one.order = append([]string(nil), qo.order...)
			for _, w := range variables {
				if w != v {
					one.order = append(one.order, w)
				}
			}
		}
		f, err := ve.run(op, []string{v}, evidence, one)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}

	return out, nil
}

// MAPResult is the most probable joint assignment of a MAP query.
type MAPResult struct {
	Variables   []string
	States      []int   // States[i] is the state of Variables[i]
	Probability float64 // posterior probability of the assignment given the evidence
}

// Assignment returns the result as a name → state map.
func (r MAPResult) Assignment() map[string]int {
	out := make(map[string]int, len(r.Variables))
	for i, v := range r.Variables {
		out[v] = r.States[i]
	}

	return out
}

// MAPQuery returns the most probable joint assignment of variables given
// evidence. Empty variables means every unobserved variable, in declaration
// order. Ties resolve to the assignment that comes first in row-major order
// (lowest state of the first variable, then the next, ...).
func (ve *VariableElimination) MAPQuery(variables []string, evidence map[string]int, opts ...QueryOption) (MAPResult, error) {
	const op = "MAPQuery"
	if len(variables) == 0 {
		if err := ve.checkEvidence(op, evidence); err != nil {
			return MAPResult{}, err
		}
		unobserved := make([]string, 0, ve.model.Len())
		for _, name := range ve.model.Names() {
			if _, observed := evidence[name]; !observed {
				unobserved = append(unobserved, name)
			}
		}
		variables = unobserved
	}
	post, err := ve.run(op, variables, evidence, gatherQueryOptions(opts))
	if err != nil {
		return MAPResult{}, err
	}
	states, p := post.Argmax()

	return MAPResult{Variables: post.Names(), States: states, Probability: p}, nil
}

// EliminationOrder returns the order Query would use for the same request,
// after pruning. The slice is a copy.
func (ve *VariableElimination) EliminationOrder(variables []string, evidence map[string]int, opts ...QueryOption) ([]string, error) {
	const op = "EliminationOrder"
	if err := ve.checkRequest(op, variables, evidence); err != nil {
		return nil, err
	}
	p, err := ve.prepare(op, variables, evidence, gatherQueryOptions(opts))
	if err != nil {
		return nil, err
	}

	return append([]string(nil), p.order...), nil
}

// InducedWidth returns the induced width of eliminating order from the full
// model (all CPD factors, no evidence): the largest number of neighbours a
// variable has when it is eliminated.
func (ve *VariableElimination) InducedWidth(order []string) (int, error) {
	const op = "InducedWidth"
	seen := make(map[string]bool, len(order))
	for _, v := range order {
		if !ve.model.Has(v) {
			return 0, queryErr(op, v, ErrUnknownVariable, "")
		}
		if seen[v] {
			return 0, queryErr(op, v, ErrInvalidOrder, "listed twice")
		}
		seen[v] = true
	}
	fs := ve.model.Factors()
	scopes := make([][]string, len(fs))
	for i, f := range fs {
		scopes[i] = f.Names()
	}

	return ordering.InducedWidth(order, scopes), nil
}

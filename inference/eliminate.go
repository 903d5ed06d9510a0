// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/ordering"
)

// plan is the resolved input of one elimination run.
type plan struct {
	factors []*factor.Factor // relevant CPDs, already reduced by evidence
	order   []string         // hidden variables to sum out, in sequence
	cached  bool
}

// run executes one validated-or-not request end to end and records metrics.
func (ve *VariableElimination) run(op string, query []string, evidence map[string]int, qo queryOptions) (*factor.Factor, error) {
	start := time.Now()
	f, largest, err := ve.eliminate(op, query, evidence, qo)
	ve.opts.metrics.observeQuery(outcome(err), time.Since(start), largest)

	return f, err
}

// eliminate is the Variable Elimination core. It returns the posterior and
// the size of the largest factor built along the way.
func (ve *VariableElimination) eliminate(op string, query []string, evidence map[string]int, qo queryOptions) (*factor.Factor, int, error) {
	if err := ve.checkRequest(op, query, evidence); err != nil {
		return nil, 0, err
	}
	p, err := ve.prepare(op, query, evidence, qo)
	if err != nil {
		return nil, 0, err
	}
	log := ve.opts.logger
	log.Debug("elimination order",
		zap.String("op", op),
		zap.Strings("query", query),
		zap.Strings("order", p.order),
		zap.Int("factors", len(p.factors)),
		zap.Bool("cached", p.cached))

	// elimination loop over the working multiset
	work := p.factors
	largest := 0
	for _, v := range p.order {
		var touching []*factor.Factor
		rest := make([]*factor.Factor, 0, len(work))
		for _, f := range work {
			if f.Contains(v) {
				touching = append(touching, f)
			} else {
				rest = append(rest, f)
			}
		}
		prod, err := factor.Product(touching...)
		if err != nil {
			return nil, largest, err
		}
		if prod.Len() > largest {
			largest = prod.Len()
		}
		work = append(rest, factor.SumOut(prod, v))
		log.Debug("eliminated",
			zap.String("variable", v),
			zap.Int("combined", len(touching)),
			zap.Int("size", prod.Len()))
	}

	// combination over the query scope
	joint, err := factor.Product(work...)
	if err != nil {
		return nil, largest, err
	}
	if joint.Len() > largest {
		largest = joint.Len()
	}
	if joint, err = factor.Reorder(joint, query); err != nil {
		return nil, largest, err
	}

	post, err := factor.Normalize(joint, ve.opts.factorOpts...)
	if err != nil {
		if errors.Is(err, factor.ErrDegenerate) {
			log.Warn("degenerate posterior",
				zap.String("op", op),
				zap.Strings("query", query),
				zap.String("evidence", formatEvidence(evidence)))

			return nil, largest, &NumericError{Op: op, Evidence: copyEvidence(evidence), Err: err}
		}

		return nil, largest, err
	}

	return post, largest, nil
}

// prepare selects the relevant factors, reduces them and resolves the order.
//
// Steps:
//  1. Relevant variables: ancestral closure of query ∪ evidence when pruning,
//     otherwise every variable.
//  2. Reduce each relevant CPD by the evidence.
//  3. Hidden = relevant − query − evidence.
//  4. Order: explicit (validated against the whole model, then restricted to
//     hidden), else cache or heuristic.
func (ve *VariableElimination) prepare(op string, query []string, evidence map[string]int, qo queryOptions) (*plan, error) {
	// 1) relevance
	relevant := ve.model.Names()
	if ve.opts.prune {
		seeds := append(append([]string(nil), query...), sortedKeys(evidence)...)
		anc, err := ve.model.Ancestors(seeds...)
		if err != nil {
			return nil, queryErr(op, "", ErrUnknownVariable, "%v", err)
		}
		relevant = anc
	}

	// 2) reduction
	factors := make([]*factor.Factor, 0, len(relevant))
	scopes := make([][]string, 0, len(relevant))
	for _, name := range relevant {
		cpd, err := ve.model.CPD(name)
		if err != nil {
			return nil, err
		}
		r, err := factor.Reduce(cpd, evidence)
		if err != nil {
			return nil, queryErr(op, name, ErrEvidenceOutOfRange, "%v", err)
		}
		factors = append(factors, r)
		scopes = append(scopes, r.Names())
	}

	// 3) hidden variables
	excluded := make(map[string]bool, len(query)+len(evidence))
	for _, q := range query {
		excluded[q] = true
	}
	for e := range evidence {
		excluded[e] = true
	}
	hidden := make([]string, 0, len(relevant))
	isHidden := make(map[string]bool, len(relevant))
	for _, name := range relevant {
		if !excluded[name] {
			hidden = append(hidden, name)
			isHidden[name] = true
		}
	}

	// 4) order
	if qo.hasOrder {
		if err := ve.checkOrder(op, qo.order, query, evidence); err != nil {
			return nil, err
		}
		order := make([]string, 0, len(hidden))
		for _, v := range qo.order {
			if isHidden[v] {
				order = append(order, v)
			}
		}

		return &plan{factors: factors, order: order}, nil
	}

	h := ve.opts.heuristic
	if qo.hasHeuristic {
		h = qo.heuristic
	}
	compute := func() ([]string, error) {
		return ordering.Order(hidden, scopes, ve.cards, h)
	}
	if ve.cache == nil {
		order, err := compute()
		if err != nil {
			return nil, err
		}

		return &plan{factors: factors, order: order}, nil
	}
	order, hit, err := ve.cache.get(orderKey(query, evidence, h, ve.opts.prune), compute)
	if err != nil {
		return nil, err
	}
	if hit {
		ve.opts.metrics.cacheHit()
	}

	return &plan{factors: factors, order: order, cached: hit}, nil
}

func outcome(err error) string {
	var qe *QueryError
	var ne *NumericError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &qe):
		return OutcomeQueryError
	case errors.As(err, &ne):
		return OutcomeNumericError
	default:
		return OutcomeError
	}
}

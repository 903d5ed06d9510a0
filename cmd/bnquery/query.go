// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/ordering"
)

// queryFlags are shared by query and order.
type queryFlags struct {
	vars      []string
	evidence  []string
	order     []string
	heuristic ordering.Heuristic
	noPrune   bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.vars, "var", "q", nil, "query variable (repeatable or comma separated)")
	cmd.Flags().StringSliceVarP(&f.evidence, "evidence", "e", nil, "observation NAME=STATE, STATE a label or index")
	cmd.Flags().StringSliceVar(&f.order, "order", nil, "explicit elimination order")
	cmd.Flags().Var(&f.heuristic, "heuristic", "ordering heuristic: min-fill, min-neighbors, min-weight, weighted-min-fill")
	cmd.Flags().BoolVar(&f.noPrune, "no-prune", false, "keep barren variables")
}

// parseEvidence turns NAME=STATE pairs into state indices using doc labels.
func parseEvidence(doc *netfile.Document, pairs []string) (map[string]int, error) {
	ev := make(map[string]int, len(pairs))
	for _, p := range pairs {
		name, label, ok := strings.Cut(p, "=")
		if !ok || name == "" || label == "" {
			return nil, fmt.Errorf("evidence %q: want NAME=STATE", p)
		}
		s, err := doc.StateIndex(name, label)
		if err != nil {
			return nil, err
		}
		ev[name] = s
	}

	return ev, nil
}

// engine validates the network and builds the elimination engine.
func (a *app) engine(path string, f *queryFlags) (*netfile.Document, *inference.VariableElimination, map[string]int, error) {
	doc, n, err := a.load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	ev, err := parseEvidence(doc, f.evidence)
	if err != nil {
		return nil, nil, nil, err
	}
	ve, err := inference.NewVariableElimination(n,
		inference.WithLogger(a.logger),
		inference.WithHeuristic(f.heuristic),
		inference.WithPruning(!f.noPrune),
		inference.WithOrderCache(false))
	if err != nil {
		return nil, nil, nil, err
	}

	return doc, ve, ev, nil
}

func (f *queryFlags) queryOptions() []inference.QueryOption {
	if len(f.order) == 0 {
		return nil
	}

	return []inference.QueryOption{inference.WithEliminationOrder(f.order...)}
}

func (a *app) newQueryCmd() *cobra.Command {
	var (
		flags     queryFlags
		mapQuery  bool
		marginals bool
	)
	cmd := &cobra.Command{
		Use:   "query FILE",
		Short: "Posterior of the query variables given evidence",
		Long: `Prints P(vars | evidence) as a table. With --marginals each variable gets
its own table; with --map only the most probable joint assignment is printed
(all unobserved variables when --var is omitted).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, ve, ev, err := a.engine(args[0], &flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts := flags.queryOptions()

			switch {
			case mapQuery:
				res, err := ve.MAPQuery(flags.vars, ev, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "MAP%s (p = %.6f)\n", givenClause(doc, ev), res.Probability)
				fmt.Fprintln(out, renderAssignment(doc, res))

			case marginals:
				fs, err := ve.Marginals(flags.vars, ev, opts...)
				if err != nil {
					return err
				}
				for _, f := range fs {
					fmt.Fprintf(out, "P(%s%s)\n", f.Names()[0], givenClause(doc, ev))
					fmt.Fprintln(out, renderFactor(doc, f))
				}

			default:
				f, err := ve.Query(flags.vars, ev, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "P(%s%s)\n", strings.Join(f.Names(), ", "), givenClause(doc, ev))
				fmt.Fprintln(out, renderFactor(doc, f))
			}

			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&mapQuery, "map", false, "print the most probable joint assignment")
	cmd.Flags().BoolVar(&marginals, "marginals", false, "one table per query variable")
	cmd.MarkFlagsMutuallyExclusive("map", "marginals")

	return cmd
}

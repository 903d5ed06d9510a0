// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newOrderCmd() *cobra.Command {
	var flags queryFlags
	cmd := &cobra.Command{
		Use:   "order FILE",
		Short: "Show the elimination order a query would use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ve, ev, err := a.engine(args[0], &flags)
			if err != nil {
				return err
			}
			order, err := ve.EliminationOrder(flags.vars, ev, flags.queryOptions()...)
			if err != nil {
				return err
			}
			width, err := ve.InducedWidth(order)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "heuristic:     %v\n", flags.heuristic)
			fmt.Fprintf(out, "order:         %s\n", strings.Join(order, ", "))
			fmt.Fprintf(out, "induced width: %d\n", width)

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

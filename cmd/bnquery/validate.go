// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bayesnet/network"
)

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check every CPD and the acyclicity of the network",
		Long: `Reports every violation in declaration order: missing CPDs, cardinality and
scope mismatches, negative entries, columns not summing to 1 and cycles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0])
		},
	}
}

func (a *app) runValidate(cmd *cobra.Command, path string) error {
	_, n, err := a.load(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	err = n.CheckModel()
	var ve *network.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(out, "%s: %d violation(s)\n", path, len(ve.Violations))
		for _, v := range ve.Violations {
			fmt.Fprintf(out, "  - %v\n", v)
		}

		return fmt.Errorf("%s: network is invalid", path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: valid (%d variables, %d edges)\n", path, len(n.Nodes()), len(n.Edges()))

	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/network"
)

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "bnquery",
		Short: "Exact inference on discrete Bayesian networks",
		Long: `bnquery loads a Bayesian network from a YAML file, checks it and answers
posterior, marginal and MAP queries with variable elimination.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config = zap.NewDevelopmentConfig()
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "V", false, "debug logging of validation and elimination steps")

	root.AddCommand(
		a.newValidateCmd(),
		a.newQueryCmd(),
		a.newOrderCmd(),
	)

	return root
}

// load reads path and builds the network it describes (unvalidated).
func (a *app) load(path string) (*netfile.Document, *network.Network, error) {
	doc, err := netfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	n, err := doc.Build(network.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("network loaded",
		zap.String("path", path),
		zap.Int("variables", len(doc.Variables)),
		zap.Int("edges", len(doc.Edges)))

	return doc, n, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/dataset"
	"github.com/katalvlaran/salesman/logger"
	"github.com/katalvlaran/salesman/planner"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configFile string
	cfg        config.Config
	log        *zap.Logger
}

// flagKeys maps persistent and local flag names to config keys.
var flagKeys = map[string]string{
	"dataset":      "dataset.path",
	"directed":     "dataset.directed",
	"geodesic":     "dataset.geodesic_weights",
	"depot":        "route.depot",
	"closing-edge": "solver.closing_edge",
	"hamiltonian":  "solver.hamiltonian",
	"max-vertices": "solver.max_vertices",
	"max-paths":    "solver.max_paths",
	"port":         "http.port",
	"log-level":    "log.level",
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "salesman",
		Short:         "salesman plans delivery round trips by exhaustive search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (default: ./salesman.yaml or ./data/salesman.yaml)")
	pf.String("dataset", "", "stop catalogue file (.json, .yaml, .toml)")
	pf.Bool("directed", false, "treat edge records as one-way")
	pf.Bool("geodesic", false, "use great-circle meters for edges without a weight")
	pf.Int("depot", 0, "depot vertex id")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVerticesCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newBenchCmd(a))

	return root
}

// setup reads the configuration with changed flags taking priority and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err = v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	if a.cfg, err = config.Decode(v); err != nil {
		return err
	}
	if a.log, err = logger.New(a.cfg.Log); err != nil {
		return err
	}

	return nil
}

// planner loads the dataset and returns a planner over it.
func (a *app) planner() (*planner.Planner, *dataset.Dataset, error) {
	ds, err := dataset.LoadFile(a.cfg.Dataset.Path)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug("dataset loaded",
		zap.String("path", a.cfg.Dataset.Path),
		zap.Int("vertices", len(ds.Vertices)),
		zap.Int("edges", len(ds.Edges)),
	)
	p, err := planner.New(ds, a.cfg, a.log)
	if err != nil {
		return nil, nil, err
	}

	return p, ds, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tsp"
)

// benchRow is one measured graph size.
type benchRow struct {
	n          int
	paths      int
	candidates int
	weight     float64
	elapsed    time.Duration
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		from, to int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the exhaustive solver on random complete graphs",
		Long: "bench solves seeded random complete graphs of growing size with the configured\n" +
			"solver options and prints the paths enumerated and the time taken per size.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from < 1 || to < from {
				return errors.New("bench: need 1 <= --from <= --to")
			}
			rows := make([]benchRow, 0, to-from+1)
			for n := from; n <= to; n++ {
				row, err := a.benchOnce(cmd, n, seed)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			renderBench(cmd.OutOrStdout(), rows)

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&from, "from", 3, "smallest graph size")
	f.IntVar(&to, "to", 8, "largest graph size")
	f.Int64Var(&seed, "seed", 1, "weight seed")
	f.Bool("closing-edge", false, "score the return leg to the depot")
	f.Bool("hamiltonian", false, "only accept cycles through every stop")
	f.Int("max-vertices", 0, "refuse graphs above this many vertices (unset: configured ceiling, default 10; 0: no limit)")

	return cmd
}

func (a *app) benchOnce(cmd *cobra.Command, n int, seed int64) (benchRow, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(a.cfg.Dataset.Directed)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(100, 2500))},
		builder.Complete(n),
	)
	if err != nil {
		return benchRow{}, err
	}

	started := time.Now()
	tour, err := tsp.Solve(g,
		tsp.WithContext(cmd.Context()),
		tsp.WithClosingEdge(a.cfg.Solver.ClosingEdge),
		tsp.WithHamiltonian(a.cfg.Solver.Hamiltonian),
		tsp.WithMaxVertices(a.cfg.Solver.MaxVertices),
	)
	if err != nil {
		return benchRow{}, fmt.Errorf("bench n=%d: %w", n, err)
	}
	row := benchRow{
		n:          n,
		paths:      tour.Paths,
		candidates: tour.Candidates,
		weight:     tour.Weight,
		elapsed:    time.Since(started),
	}
	a.log.Debug("bench size done", zap.Int("n", n), zap.Int("paths", row.paths), zap.Duration("elapsed", row.elapsed))

	return row, nil
}

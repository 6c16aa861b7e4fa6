// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		stops  []int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Plan the cheapest round trip from the depot through --stops",
		Example: `  salesman solve --stops 3,1,4
  salesman solve --stops 1,2 --closing-edge --hamiltonian --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(stops) == 0 {
				return errors.New("--stops is required")
			}
			p, _, err := a.planner()
			if err != nil {
				return err
			}
			plan, err := p.Plan(cmd.Context(), stops)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(plan)
			}
			renderPlan(out, plan)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVarP(&stops, "stops", "s", nil, "stop ids to visit, comma separated")
	f.BoolVar(&asJSON, "json", false, "print the plan as JSON")
	f.Bool("closing-edge", false, "score the edge back to the depot")
	f.Bool("hamiltonian", false, "only accept round trips through every stop")
	f.Int("max-vertices", 0, "refuse graphs above this many vertices (unset: configured ceiling, default 10; 0: no limit)")
	f.Int("max-paths", 0, "abort after this many enumerated paths (0: no limit)")

	return cmd
}

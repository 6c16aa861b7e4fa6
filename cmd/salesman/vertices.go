// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newVerticesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "vertices",
		Short: "List the stops that can be picked (depot excluded)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, ds, err := a.planner()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(p.Catalogue())
			}
			dist, err := p.DepotDistances()
			if err != nil {
				return err
			}
			depot, _ := ds.Vertex(p.Depot())
			renderCatalogue(out, depot, p.Catalogue(), dist)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalogue as JSON")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, _, err := a.planner()
			if err != nil {
				return err
			}
			err = server.New(p, a.cfg.HTTP, a.log).Run(cmd.Context())
			a.log.Info("salesman server stopped", zap.Error(err))

			return err
		},
	}
	cmd.Flags().Int("port", 0, "listen port")

	return cmd
}

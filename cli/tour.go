// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dealership/tour"
	"github.com/spf13/cobra"
)

// NewTourCmd returns the command replaying the full walkthrough.
func NewTourCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tour",
		Short:         "Replay the walkthrough",
		Long:          `Creates a user, runs every car operation, aggregates cars by brand and links a car to a concessionaire, printing each result`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return nil
			}

			var opts []tour.Option
			if !RawOutput {
				opts = append(opts, tour.WithColor())
			}

			if err := tour.Run(cmd.Context(), svcs, cmd.OutOrStdout(), opts...); err != nil {
				logErrorCmd(*cmd, err)
				return err
			}

			return nil
		},
	}
}

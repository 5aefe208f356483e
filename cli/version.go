// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dealership"
	"github.com/spf13/cobra"
)

// NewVersionCmd returns version command.
func NewVersionCmd(service, instanceID string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Dealership version",
		Long:  `Print the version, commit and build time of the dealership binary`,
		Run: func(cmd *cobra.Command, args []string) {
			logJSONCmd(*cmd, dealership.Info(service, instanceID))
		},
	}
}

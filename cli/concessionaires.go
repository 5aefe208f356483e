// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dealership/concessionaires"
	"github.com/spf13/cobra"
)

var cmdConcessionaires = []cobra.Command{
	{
		Use:   "create <name> <email> <address>",
		Short: "Create concessionaire",
		Long: "Creates new concessionaire without cars\n" +
			"Usage:\n" +
			"\tdealership concessionaires create \"Concesionario 1\" concesionario@falso.com \"Calle Falsa 123\"\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			c := concessionaires.Concessionaire{
				Name:    args[0],
				Email:   args[1],
				Address: args[2],
			}

			c, err := svcs.Concessionaires.CreateConcessionaire(cmd.Context(), c)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, c)
		},
	},
	{
		Use:   "add-car <concessionaire_id> <car_id>",
		Short: "Add car",
		Long:  "Appends a car reference to the concessionaire",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := svcs.Concessionaires.AddCar(cmd.Context(), args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "get <concessionaire_id>",
		Short: "Get concessionaire",
		Long:  "Get concessionaire with its car references",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			c, err := svcs.Concessionaires.ViewConcessionaire(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, c)
		},
	},
	{
		Use:   "populate <concessionaire_id>",
		Short: "Get concessionaire with cars",
		Long:  "Get concessionaire with its car references replaced by the referenced cars",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			pc, err := svcs.Concessionaires.ViewWithCars(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, pc)
		},
	},
}

// NewConcessionairesCmd returns concessionaires command.
func NewConcessionairesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "concessionaires [create | add-car | get | populate]",
		Short: "Concessionaires management",
		Long:  `Concessionaires management: create concessionaires and link cars to them`,
	}

	for i := range cmdConcessionaires {
		cmd.AddCommand(&cmdConcessionaires[i])
	}

	return &cmd
}

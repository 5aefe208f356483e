// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/absmach/dealership/cars"
	"github.com/spf13/cobra"
)

var cmdCars = []cobra.Command{
	{
		Use:   "create <brand> <model> [description]",
		Short: "Create car",
		Long: "Creates new car\n" +
			"Usage:\n" +
			"\tdealership cars create Ford Focus \"Coche de empresa\"\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			car := cars.Car{
				Brand: args[0],
				Model: args[1],
			}
			if len(args) == 3 {
				car.Description = args[2]
			}

			car, err := svcs.Cars.CreateCar(cmd.Context(), car)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, car)
		},
	},
	{
		Use:   "get <car_id>",
		Short: "Get car",
		Long:  "Get car by id",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			car, err := svcs.Cars.ViewCar(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, car)
		},
	},
	{
		Use:   "list",
		Short: "List cars",
		Long:  "List cars using the limit and offset flags. A zero limit lists all cars",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			page, err := svcs.Cars.ListCars(cmd.Context(), pageMetadata())
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, page)
		},
	},
	{
		Use:   "update <car_id> <JSON_string>",
		Short: "Update car",
		Long: "Updates the given fields of a car and returns the updated car\n" +
			"Usage:\n" +
			"\tdealership cars update <car_id> '{\"brand\":\"Toyota\"}'\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var cu cars.CarUpdate
			if err := json.Unmarshal([]byte(args[1]), &cu); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			car, err := svcs.Cars.UpdateCar(cmd.Context(), args[0], cu)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, car)
		},
	},
	{
		Use:   "delete <car_id>",
		Short: "Delete car",
		Long:  "Removes the car and prints the removed document",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			car, err := svcs.Cars.RemoveCar(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, car)
		},
	},
	{
		Use:   "aggregate",
		Short: "Count cars per brand",
		Long:  "Groups cars by brand and prints the number of cars in each group",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			totals, err := svcs.Cars.CountByBrand(cmd.Context())
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, totals)
		},
	},
}

// NewCarsCmd returns cars command.
func NewCarsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "cars [create | get | list | update | delete | aggregate]",
		Short: "Cars management",
		Long:  `Cars management: create, get, list, update, delete and aggregate cars`,
	}

	for i := range cmdCars {
		cmd.AddCommand(&cmdCars[i])
	}

	return &cmd
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"testing"

	carmocks "github.com/absmach/dealership/cars/mocks"
	"github.com/absmach/dealership/cli"
	conmocks "github.com/absmach/dealership/concessionaires/mocks"
	"github.com/absmach/dealership/tour"
	usermocks "github.com/absmach/dealership/users/mocks"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type outputLog uint8

const (
	usageLog outputLog = iota
	errLog
	entityLog
	okLog
)

const (
	invalidID = "invalid"
	extraArg  = "extra-arg"
)

func init() {
	color.NoColor = true
}

func newServices() tour.Services {
	carsSvc := carmocks.NewService()
	s := tour.Services{
		Users:           usermocks.NewService(),
		Cars:            carsSvc,
		Concessionaires: conmocks.NewService(carsSvc),
	}
	cli.SetServices(s)

	return s
}

func executeCommand(t *testing.T, root *cobra.Command, args ...string) string {
	buffer := new(bytes.Buffer)
	root.SetOut(buffer)
	root.SetErr(buffer)
	// A nil slice makes cobra fall back to the test binary arguments.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	assert.NoError(t, err, "Error executing command")
	return buffer.String()
}

func setFlags(rootCmd *cobra.Command) *cobra.Command {
	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		10,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Offset,
		"offset",
		"o",
		0,
		"Offset query parameter",
	)

	return rootCmd
}

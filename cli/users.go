// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dealership/users"
	"github.com/spf13/cobra"
)

var cmdUsers = []cobra.Command{
	{
		Use:   "create <name> <email> [avatar_url]",
		Short: "Create user",
		Long: "Creates new user\n" +
			"Usage:\n" +
			"\tdealership users create Bill bill@initech.com https://i.imgur.com/dM7Thhn.png\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 || len(args) > 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			user := users.User{
				Name:  args[0],
				Email: args[1],
			}
			if len(args) == 3 {
				user.Avatar = args[2]
			}

			user, err := svcs.Users.CreateUser(cmd.Context(), user)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, user)
		},
	},
	{
		Use:   "get <user_id>",
		Short: "Get user",
		Long:  "Get user by id",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			user, err := svcs.Users.ViewUser(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, user)
		},
	},
	{
		Use:   "find <name>",
		Short: "Find user by name",
		Long:  "Get the first user stored with the given name",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			user, err := svcs.Users.ViewUserByName(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, user)
		},
	},
	{
		Use:   "profile <name>",
		Short: "Get user profile",
		Long:  "Get only the name and email of the first user stored with the given name",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			p, err := svcs.Users.ViewProfile(cmd.Context(), args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, p)
		},
	},
	{
		Use:   "list",
		Short: "List users",
		Long:  "List users using the limit and offset flags",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			page, err := svcs.Users.ListUsers(cmd.Context(), pageMetadata())
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, page)
		},
	},
}

// NewUsersCmd returns users command.
func NewUsersCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "users [create | get | find | profile | list]",
		Short: "Users management",
		Long:  `Users management: create, look up and list users`,
	}

	for i := range cmdUsers {
		cmd.AddCommand(&cmdUsers[i])
	}

	return &cmd
}

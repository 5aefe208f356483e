// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

// offline marks commands that run without a database connection.
const offline = "offline"

// Built-in cobra commands that only print text.
var builtinCmds = map[string]bool{
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// MarkOffline annotates cmds so that they run without a database connection.
func MarkOffline(cmds ...*cobra.Command) {
	for _, c := range cmds {
		if c.Annotations == nil {
			c.Annotations = map[string]string{}
		}
		c.Annotations[offline] = "true"
	}
}

// RequiresDatabase reports whether running cmd needs the services to be
// connected to MongoDB.
func RequiresDatabase(cmd *cobra.Command) bool {
	if !cmd.Runnable() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[offline] != "" || builtinCmds[c.Name()] {
			return false
		}
	}

	return true
}

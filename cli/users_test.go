// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/absmach/dealership/cli"
	"github.com/absmach/dealership/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bill = users.User{
	Name:   "Bill",
	Email:  "bill@initech.com",
	Avatar: "https://i.imgur.com/dM7Thhn.png",
}

func TestUsersCmd(t *testing.T) {
	newServices()
	rootCmd := setFlags(cli.NewUsersCmd())

	var created users.User
	out := executeCommand(t, rootCmd, "create", bill.Name, bill.Email, bill.Avatar)
	require.Nil(t, json.Unmarshal([]byte(out), &created), out)
	bill.ID = created.ID
	assert.Equal(t, bill, created)

	cases := []struct {
		desc    string
		args    []string
		user    users.User
		profile users.Profile
		logType outputLog
	}{
		{
			desc:    "get user by id",
			args:    []string{"get", created.ID},
			user:    created,
			logType: entityLog,
		},
		{
			desc:    "find user by name",
			args:    []string{"find", bill.Name},
			user:    created,
			logType: entityLog,
		},
		{
			desc:    "get user profile",
			args:    []string{"profile", bill.Name},
			profile: users.Profile{Name: bill.Name, Email: bill.Email},
			logType: okLog,
		},
		{
			desc:    "find unknown user",
			args:    []string{"find", "Samir"},
			logType: errLog,
		},
		{
			desc:    "get user with invalid id",
			args:    []string{"get", invalidID},
			logType: errLog,
		},
		{
			desc:    "create user with invalid email",
			args:    []string{"create", "Peter", "peter"},
			logType: errLog,
		},
		{
			desc:    "get user without id",
			args:    []string{"get"},
			logType: usageLog,
		},
	}

	for _, tc := range cases {
		out := executeCommand(t, rootCmd, tc.args...)

		switch tc.logType {
		case entityLog:
			var user users.User
			require.Nil(t, json.Unmarshal([]byte(out), &user), fmt.Sprintf("%s: %s", tc.desc, out))
			assert.Equal(t, tc.user, user, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.user, user))
		case okLog:
			var p users.Profile
			require.Nil(t, json.Unmarshal([]byte(out), &p), fmt.Sprintf("%s: %s", tc.desc, out))
			assert.Equal(t, tc.profile, p, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.profile, p))
		case errLog:
			assert.True(t, strings.HasPrefix(out, "\nerror: "), fmt.Sprintf("%s unexpected error response: %s", tc.desc, out))
		case usageLog:
			assert.True(t, strings.Contains(out, "usage: "), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
		}
	}

	var page users.Page
	out = executeCommand(t, rootCmd, "list", "--limit", "10", "--offset", "0")
	require.Nil(t, json.Unmarshal([]byte(out), &page), out)
	assert.Equal(t, uint64(1), page.Total)
	assert.Equal(t, []users.User{created}, page.Users)
}

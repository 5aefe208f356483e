// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/absmach/dealership/tour"

// Services used by every command.
var svcs tour.Services

// SetServices sets the services the commands run against.
func SetServices(s tour.Services) {
	svcs = s
}

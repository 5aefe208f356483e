// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/absmach/dealership/users"
)

// NewService returns a users service backed by an in-memory repository.
func NewService() users.Service {
	return users.NewService(NewRepository(), objectid.New())
}

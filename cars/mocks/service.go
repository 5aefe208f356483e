// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/pkg/objectid"
)

// NewService uses mock dependencies to create a real cars service.
func NewService() cars.Service {
	return cars.NewService(NewRepository(), objectid.New())
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/concessionaires"
	"github.com/absmach/dealership/pkg/objectid"
)

// NewService returns a concessionaires service backed by an in-memory
// repository, resolving cars through carsSvc.
func NewService(carsSvc cars.Service) concessionaires.Service {
	return concessionaires.NewService(NewRepository(), carsSvc, objectid.New())
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package concessionaires contains the concessionaire domain. A
// concessionaire keeps an ordered list of references to cars which are
// resolved into full car documents on demand.
package concessionaires

import (
	"context"

	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/pkg/validate"
)

// Concessionaire is a car dealer holding references to the cars it sells.
type Concessionaire struct {
	ID      string   `json:"id"`
	Name    string   `json:"name" validate:"required"`
	Email   string   `json:"email" validate:"required,email"`
	Address string   `json:"address" validate:"required"`
	Cars    []string `json:"cars" validate:"dive,mongodb"`
}

// Validate checks the concessionaire against its schema.
func (c Concessionaire) Validate() error {
	return validate.Struct(c)
}

// PopulatedConcessionaire is a concessionaire with its car references
// replaced by the referenced cars.
type PopulatedConcessionaire struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Cars    []cars.Car `json:"cars"`
}

// Repository specifies a concessionaire persistence API.
type Repository interface {
	// Save persists the concessionaire.
	Save(ctx context.Context, c Concessionaire) (Concessionaire, error)

	// RetrieveByID retrieves the concessionaire having the provided
	// identifier, with car references left unresolved.
	RetrieveByID(ctx context.Context, id string) (Concessionaire, error)

	// AddCar appends the car reference to the concessionaire's list.
	AddCar(ctx context.Context, id, carID string) error
}

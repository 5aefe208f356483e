// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cars

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/validate"
)

// Car is a vehicle document. Brand and model are required.
type Car struct {
	ID          string `json:"id"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Validate checks the car against its schema.
func (c Car) Validate() error {
	return validate.Struct(c)
}

// CarUpdate carries a partial update. Nil fields are left untouched.
type CarUpdate struct {
	Brand       *string `json:"brand,omitempty" validate:"omitempty,min=1"`
	Model       *string `json:"model,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that the update does not clear a required field.
func (cu CarUpdate) Validate() error {
	return validate.Struct(cu)
}

// Empty reports whether the update changes nothing.
func (cu CarUpdate) Empty() bool {
	return cu.Brand == nil && cu.Model == nil && cu.Description == nil
}

// BrandTotal is one row of the cars-per-brand aggregation.
type BrandTotal struct {
	Brand string `json:"brand"`
	Total uint64 `json:"total"`
}

// Page contains page related metadata as well as a list of cars that
// belong to this page.
type Page struct {
	dealership.PageMetadata
	Cars []Car `json:"cars"`
}

// Repository specifies a car persistence API.
type Repository interface {
	// Save persists the car.
	Save(ctx context.Context, car Car) (Car, error)

	// RetrieveByID retrieves the car having the provided identifier.
	RetrieveByID(ctx context.Context, id string) (Car, error)

	// RetrieveByIDs retrieves the cars having the provided identifiers, in
	// the order of ids. Identifiers without a document are skipped.
	RetrieveByIDs(ctx context.Context, ids []string) ([]Car, error)

	// RetrieveAll retrieves a page of cars in insertion order.
	RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (Page, error)

	// Update applies the partial update and returns the updated car.
	Update(ctx context.Context, id string, cu CarUpdate) (Car, error)

	// Remove removes the car and returns the removed document.
	Remove(ctx context.Context, id string) (Car, error)

	// CountByBrand groups cars by brand and counts each group.
	CountByBrand(ctx context.Context) ([]BrandTotal, error)
}

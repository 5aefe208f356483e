// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
)

var _ cars.Repository = (*carRepositoryMock)(nil)

type carRepositoryMock struct {
	mu    sync.Mutex
	order []string
	cars  map[string]cars.Car
}

// NewRepository creates in-memory car repository.
func NewRepository() cars.Repository {
	return &carRepositoryMock{
		cars: make(map[string]cars.Car),
	}
}

func (crm *carRepositoryMock) Save(_ context.Context, car cars.Car) (cars.Car, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	if _, err := objectid.Parse(car.ID); err != nil {
		return cars.Car{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	if _, ok := crm.cars[car.ID]; ok {
		return cars.Car{}, repoerr.ErrConflict
	}

	crm.cars[car.ID] = car
	crm.order = append(crm.order, car.ID)

	return car, nil
}

func (crm *carRepositoryMock) RetrieveByID(_ context.Context, id string) (cars.Car, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	return crm.retrieve(id)
}

func (crm *carRepositoryMock) RetrieveByIDs(_ context.Context, ids []string) ([]cars.Car, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	if _, err := objectid.ParseAll(ids); err != nil {
		return nil, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	results := []cars.Car{}
	for _, id := range ids {
		if c, ok := crm.cars[id]; ok {
			results = append(results, c)
		}
	}

	return results, nil
}

func (crm *carRepositoryMock) RetrieveAll(_ context.Context, pm dealership.PageMetadata) (cars.Page, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	all := []cars.Car{}
	for _, id := range crm.order {
		if c, ok := crm.cars[id]; ok {
			all = append(all, c)
		}
	}

	page := cars.Page{
		PageMetadata: dealership.PageMetadata{
			Total:  uint64(len(all)),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Cars: []cars.Car{},
	}
	if pm.Offset >= uint64(len(all)) {
		return page, nil
	}

	end := uint64(len(all))
	if pm.Limit > 0 && pm.Offset+pm.Limit < end {
		end = pm.Offset + pm.Limit
	}
	page.Cars = all[pm.Offset:end]

	return page, nil
}

func (crm *carRepositoryMock) Update(_ context.Context, id string, cu cars.CarUpdate) (cars.Car, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	car, err := crm.retrieve(id)
	if err != nil {
		return cars.Car{}, err
	}

	if cu.Brand != nil {
		car.Brand = *cu.Brand
	}
	if cu.Model != nil {
		car.Model = *cu.Model
	}
	if cu.Description != nil {
		car.Description = *cu.Description
	}
	crm.cars[id] = car

	return car, nil
}

func (crm *carRepositoryMock) Remove(_ context.Context, id string) (cars.Car, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	car, err := crm.retrieve(id)
	if err != nil {
		return cars.Car{}, err
	}
	delete(crm.cars, id)

	return car, nil
}

func (crm *carRepositoryMock) CountByBrand(_ context.Context) ([]cars.BrandTotal, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	counts := map[string]uint64{}
	for _, c := range crm.cars {
		counts[c.Brand]++
	}

	totals := []cars.BrandTotal{}
	for brand, total := range counts {
		totals = append(totals, cars.BrandTotal{Brand: brand, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Brand < totals[j].Brand
	})

	return totals, nil
}

func (crm *carRepositoryMock) retrieve(id string) (cars.Car, error) {
	if _, err := objectid.Parse(id); err != nil {
		return cars.Car{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	car, ok := crm.cars[id]
	if !ok {
		return cars.Car{}, repoerr.ErrNotFound
	}

	return car, nil
}

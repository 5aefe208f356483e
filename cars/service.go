// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cars

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/errors"
	svcerr "github.com/absmach/dealership/pkg/errors/service"
)

// Service specifies an API that must be fulfilled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// CreateCar validates and stores a new car.
	CreateCar(ctx context.Context, car Car) (Car, error)

	// ViewCar retrieves the car with the provided ID.
	ViewCar(ctx context.Context, id string) (Car, error)

	// ViewCars retrieves the cars with the provided IDs in the given order,
	// skipping IDs that reference no car.
	ViewCars(ctx context.Context, ids []string) ([]Car, error)

	// ListCars retrieves a page of cars.
	ListCars(ctx context.Context, pm dealership.PageMetadata) (Page, error)

	// UpdateCar applies a partial update and returns the car as stored
	// after the update.
	UpdateCar(ctx context.Context, id string, cu CarUpdate) (Car, error)

	// RemoveCar removes the car and returns it as it was before removal.
	RemoveCar(ctx context.Context, id string) (Car, error)

	// CountByBrand returns the number of cars per brand.
	CountByBrand(ctx context.Context) ([]BrandTotal, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo       Repository
	idProvider dealership.IDProvider
}

// NewService returns a new cars service implementation.
func NewService(repo Repository, idp dealership.IDProvider) Service {
	return &service{
		repo:       repo,
		idProvider: idp,
	}
}

func (svc *service) CreateCar(ctx context.Context, car Car) (Car, error) {
	if err := car.Validate(); err != nil {
		return Car{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return Car{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	car.ID = id

	saved, err := svc.repo.Save(ctx, car)
	if err != nil {
		return Car{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) ViewCar(ctx context.Context, id string) (Car, error) {
	car, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Car{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return car, nil
}

func (svc *service) ViewCars(ctx context.Context, ids []string) ([]Car, error) {
	if len(ids) == 0 {
		return []Car{}, nil
	}

	cs, err := svc.repo.RetrieveByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return cs, nil
}

func (svc *service) ListCars(ctx context.Context, pm dealership.PageMetadata) (Page, error) {
	if err := pm.Validate(); err != nil {
		return Page{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) UpdateCar(ctx context.Context, id string, cu CarUpdate) (Car, error) {
	if err := cu.Validate(); err != nil {
		return Car{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	if cu.Empty() {
		return svc.ViewCar(ctx, id)
	}

	car, err := svc.repo.Update(ctx, id, cu)
	if err != nil {
		return Car{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return car, nil
}

func (svc *service) RemoveCar(ctx context.Context, id string) (Car, error) {
	car, err := svc.repo.Remove(ctx, id)
	if err != nil {
		return Car{}, errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return car, nil
}

func (svc *service) CountByBrand(ctx context.Context) ([]BrandTotal, error) {
	totals, err := svc.repo.CountByBrand(ctx)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return totals, nil
}

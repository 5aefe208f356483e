// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package concessionaires

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/pkg/errors"
	svcerr "github.com/absmach/dealership/pkg/errors/service"
)

// Service specifies an API that must be fulfilled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// CreateConcessionaire validates and stores a new concessionaire.
	CreateConcessionaire(ctx context.Context, c Concessionaire) (Concessionaire, error)

	// AddCar appends a car reference to the concessionaire. The car is not
	// required to exist.
	AddCar(ctx context.Context, id, carID string) error

	// ViewConcessionaire retrieves the concessionaire with its car
	// references.
	ViewConcessionaire(ctx context.Context, id string) (Concessionaire, error)

	// ViewWithCars retrieves the concessionaire with its car references
	// resolved. References to missing cars are dropped.
	ViewWithCars(ctx context.Context, id string) (PopulatedConcessionaire, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo       Repository
	cars       cars.Service
	idProvider dealership.IDProvider
}

// NewService returns a new concessionaires service implementation. Car
// references are resolved through carsSvc.
func NewService(repo Repository, carsSvc cars.Service, idp dealership.IDProvider) Service {
	return &service{
		repo:       repo,
		cars:       carsSvc,
		idProvider: idp,
	}
}

func (svc *service) CreateConcessionaire(ctx context.Context, c Concessionaire) (Concessionaire, error) {
	if err := c.Validate(); err != nil {
		return Concessionaire{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return Concessionaire{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	c.ID = id
	if c.Cars == nil {
		c.Cars = []string{}
	}

	saved, err := svc.repo.Save(ctx, c)
	if err != nil {
		return Concessionaire{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) AddCar(ctx context.Context, id, carID string) error {
	if err := svc.repo.AddCar(ctx, id, carID); err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return nil
}

func (svc *service) ViewConcessionaire(ctx context.Context, id string) (Concessionaire, error) {
	c, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Concessionaire{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return c, nil
}

func (svc *service) ViewWithCars(ctx context.Context, id string) (PopulatedConcessionaire, error) {
	c, err := svc.ViewConcessionaire(ctx, id)
	if err != nil {
		return PopulatedConcessionaire{}, err
	}

	cs, err := svc.cars.ViewCars(ctx, c.Cars)
	if err != nil {
		return PopulatedConcessionaire{}, err
	}

	return PopulatedConcessionaire{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
		Cars:    cs,
	}, nil
}

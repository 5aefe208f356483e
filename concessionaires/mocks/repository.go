// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"sync"

	"github.com/absmach/dealership/concessionaires"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
)

var _ concessionaires.Repository = (*concessionaireRepositoryMock)(nil)

type concessionaireRepositoryMock struct {
	mu              sync.Mutex
	concessionaires map[string]concessionaires.Concessionaire
}

// NewRepository creates in-memory concessionaire repository.
func NewRepository() concessionaires.Repository {
	return &concessionaireRepositoryMock{
		concessionaires: make(map[string]concessionaires.Concessionaire),
	}
}

func (crm *concessionaireRepositoryMock) Save(_ context.Context, c concessionaires.Concessionaire) (concessionaires.Concessionaire, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	if _, err := objectid.Parse(c.ID); err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	if _, err := objectid.ParseAll(c.Cars); err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	if _, ok := crm.concessionaires[c.ID]; ok {
		return concessionaires.Concessionaire{}, repoerr.ErrConflict
	}

	c.Cars = append([]string{}, c.Cars...)
	crm.concessionaires[c.ID] = c

	return c, nil
}

func (crm *concessionaireRepositoryMock) RetrieveByID(_ context.Context, id string) (concessionaires.Concessionaire, error) {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	c, err := crm.retrieve(id)
	if err != nil {
		return concessionaires.Concessionaire{}, err
	}
	c.Cars = append([]string{}, c.Cars...)

	return c, nil
}

func (crm *concessionaireRepositoryMock) AddCar(_ context.Context, id, carID string) error {
	crm.mu.Lock()
	defer crm.mu.Unlock()

	if _, err := objectid.Parse(carID); err != nil {
		return errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	c, err := crm.retrieve(id)
	if err != nil {
		return err
	}
	c.Cars = append(c.Cars, carID)
	crm.concessionaires[id] = c

	return nil
}

func (crm *concessionaireRepositoryMock) retrieve(id string) (concessionaires.Concessionaire, error) {
	if _, err := objectid.Parse(id); err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	c, ok := crm.concessionaires[id]
	if !ok {
		return concessionaires.Concessionaire{}, repoerr.ErrNotFound
	}

	return c, nil
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package users

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/errors"
	svcerr "github.com/absmach/dealership/pkg/errors/service"
)

// Service specifies an API that must be fulfilled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// CreateUser validates and stores a new user.
	CreateUser(ctx context.Context, user User) (User, error)

	// ViewUser retrieves the user with the provided ID.
	ViewUser(ctx context.Context, id string) (User, error)

	// ViewUserByName retrieves the first user with the provided name.
	ViewUserByName(ctx context.Context, name string) (User, error)

	// ViewProfile retrieves the name and email of the first user with the
	// provided name.
	ViewProfile(ctx context.Context, name string) (Profile, error)

	// ListUsers retrieves a page of users.
	ListUsers(ctx context.Context, pm dealership.PageMetadata) (Page, error)
}

var _ Service = (*service)(nil)

type service struct {
	repo       Repository
	idProvider dealership.IDProvider
}

// NewService returns a new users service implementation.
func NewService(repo Repository, idp dealership.IDProvider) Service {
	return &service{
		repo:       repo,
		idProvider: idp,
	}
}

func (svc *service) CreateUser(ctx context.Context, user User) (User, error) {
	if err := user.Validate(); err != nil {
		return User{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	user.ID = id

	saved, err := svc.repo.Save(ctx, user)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) ViewUser(ctx context.Context, id string) (User, error) {
	user, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return user, nil
}

func (svc *service) ViewUserByName(ctx context.Context, name string) (User, error) {
	user, err := svc.repo.RetrieveByName(ctx, name)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return user, nil
}

func (svc *service) ViewProfile(ctx context.Context, name string) (Profile, error) {
	p, err := svc.repo.RetrieveProfile(ctx, name)
	if err != nil {
		return Profile{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return p, nil
}

func (svc *service) ListUsers(ctx context.Context, pm dealership.PageMetadata) (Page, error) {
	if err := pm.Validate(); err != nil {
		return Page{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"sync"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/absmach/dealership/users"
)

var _ users.Repository = (*userRepositoryMock)(nil)

type userRepositoryMock struct {
	mu    sync.Mutex
	users []users.User
}

// NewRepository creates in-memory user repository.
func NewRepository() users.Repository {
	return &userRepositoryMock{}
}

func (urm *userRepositoryMock) Save(_ context.Context, user users.User) (users.User, error) {
	urm.mu.Lock()
	defer urm.mu.Unlock()

	if _, err := objectid.Parse(user.ID); err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	for _, u := range urm.users {
		if u.ID == user.ID {
			return users.User{}, repoerr.ErrConflict
		}
	}
	urm.users = append(urm.users, user)

	return user, nil
}

func (urm *userRepositoryMock) RetrieveByID(_ context.Context, id string) (users.User, error) {
	urm.mu.Lock()
	defer urm.mu.Unlock()

	if _, err := objectid.Parse(id); err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	return urm.find(func(u users.User) bool { return u.ID == id })
}

func (urm *userRepositoryMock) RetrieveByName(_ context.Context, name string) (users.User, error) {
	urm.mu.Lock()
	defer urm.mu.Unlock()

	return urm.find(func(u users.User) bool { return u.Name == name })
}

func (urm *userRepositoryMock) RetrieveProfile(ctx context.Context, name string) (users.Profile, error) {
	u, err := urm.RetrieveByName(ctx, name)
	if err != nil {
		return users.Profile{}, err
	}

	return users.Profile{Name: u.Name, Email: u.Email}, nil
}

func (urm *userRepositoryMock) RetrieveAll(_ context.Context, pm dealership.PageMetadata) (users.Page, error) {
	urm.mu.Lock()
	defer urm.mu.Unlock()

	total := uint64(len(urm.users))
	page := users.Page{
		PageMetadata: dealership.PageMetadata{
			Total:  total,
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Users: []users.User{},
	}
	if pm.Offset >= total {
		return page, nil
	}

	end := total
	if pm.Limit > 0 && pm.Offset+pm.Limit < end {
		end = pm.Offset + pm.Limit
	}
	page.Users = append(page.Users, urm.users[pm.Offset:end]...)

	return page, nil
}

func (urm *userRepositoryMock) find(match func(users.User) bool) (users.User, error) {
	for _, u := range urm.users {
		if match(u) {
			return u, nil
		}
	}

	return users.User{}, repoerr.ErrNotFound
}

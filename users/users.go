// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package users contains the user domain: storing users, looking them up by
// identifier or by name, and reading lean name and email profiles.
package users

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/validate"
)

// User represents a registered user.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// Validate checks the user against its schema.
func (u User) Validate() error {
	return validate.Struct(u)
}

// Profile is the name and email projection of a user.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Page contains a page of users.
type Page struct {
	dealership.PageMetadata
	Users []User `json:"users"`
}

// Repository specifies a user persistence API.
type Repository interface {
	// Save persists the user.
	Save(ctx context.Context, user User) (User, error)

	// RetrieveByID retrieves the user having the provided identifier.
	RetrieveByID(ctx context.Context, id string) (User, error)

	// RetrieveByName retrieves the first stored user with the given name.
	RetrieveByName(ctx context.Context, name string) (User, error)

	// RetrieveProfile fetches only the name and email of the first stored
	// user with the given name.
	RetrieveProfile(ctx context.Context, name string) (Profile, error)

	// RetrieveAll retrieves a page of users in insertion order.
	RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (Page, error)
}

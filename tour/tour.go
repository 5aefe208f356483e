// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package tour replays the dealership walkthrough: it creates and looks up
// a user, runs every car operation, aggregates cars per brand and links a
// car to a concessionaire, printing each intermediate result.
package tour

import (
	"context"
	"fmt"
	"io"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/concessionaires"
	"github.com/absmach/dealership/pkg/errors"
	"github.com/absmach/dealership/users"
	prettyjson "github.com/hokaccha/go-prettyjson"
)

// Walkthrough literals.
var (
	User = users.User{
		Name:   "Bill",
		Email:  "bill@initech.com",
		Avatar: "https://i.imgur.com/dM7Thhn.png",
	}
	CompanyCar = cars.Car{
		Brand:       "Ford",
		Model:       "Focus",
		Description: "Coche de empresa",
	}
	PersonalCar = cars.Car{
		Brand:       "Audi",
		Model:       "Rs3",
		Description: "Coche personal",
	}
	NewBrand       = "Toyota"
	Concessionaire = concessionaires.Concessionaire{
		Name:    "Concesionario 1",
		Email:   "concesionario@falso.com",
		Address: "Calle Falsa 123",
	}
)

// ErrStep indicates a walkthrough step that failed.
var ErrStep = errors.New("walkthrough step failed")

// Services groups the services the walkthrough drives.
type Services struct {
	Users           users.Service
	Cars            cars.Service
	Concessionaires concessionaires.Service
}

// Option configures the walkthrough output.
type Option func(*printer)

// WithColor enables colored JSON output.
func WithColor() Option {
	return func(p *printer) {
		p.formatter.DisabledColor = false
	}
}

type printer struct {
	w         io.Writer
	formatter *prettyjson.Formatter
}

func (p *printer) print(label string, v any) error {
	if v == nil {
		_, err := fmt.Fprintln(p.w, label)
		return err
	}

	b, err := p.formatter.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s %s\n", label, b)

	return err
}

// Run executes the walkthrough against svcs, writing a label and the JSON
// form of every intermediate result to w. It stops at the first failing
// step.
func Run(ctx context.Context, svcs Services, w io.Writer, opts ...Option) error {
	formatter := prettyjson.NewFormatter()
	formatter.DisabledColor = true
	p := &printer{w: w, formatter: formatter}
	for _, opt := range opts {
		opt(p)
	}

	step := func(label string, fn func() (any, error)) error {
		v, err := fn()
		if err != nil {
			return errors.Wrap(ErrStep, errors.Wrap(errors.New(label), err))
		}
		return p.print(label, v)
	}

	var (
		user     users.User
		firstCar cars.Car
		dealer   concessionaires.Concessionaire
	)

	steps := []struct {
		label string
		fn    func() (any, error)
	}{
		{"user1", func() (any, error) { return User, nil }},
		{"user2", func() (any, error) {
			var err error
			user, err = svcs.Users.CreateUser(ctx, User)
			return user, err
		}},
		{"user3", func() (any, error) { return svcs.Users.ViewUser(ctx, user.ID) }},
		{"user4", func() (any, error) { return svcs.Users.ViewUserByName(ctx, User.Name) }},
		{"user5", func() (any, error) { return svcs.Users.ViewProfile(ctx, User.Name) }},
		{"Car created:", func() (any, error) {
			var err error
			firstCar, err = svcs.Cars.CreateCar(ctx, CompanyCar)
			return firstCar, err
		}},
		{"Car created:", func() (any, error) { return svcs.Cars.CreateCar(ctx, PersonalCar) }},
		{"Car fetched:", func() (any, error) { return svcs.Cars.ViewCar(ctx, firstCar.ID) }},
		{"Cars listed:", func() (any, error) {
			page, err := svcs.Cars.ListCars(ctx, dealership.PageMetadata{})
			return page.Cars, err
		}},
		{"Car updated:", func() (any, error) {
			brand := NewBrand
			return svcs.Cars.UpdateCar(ctx, firstCar.ID, cars.CarUpdate{Brand: &brand})
		}},
		{"Car deleted:", func() (any, error) { return svcs.Cars.RemoveCar(ctx, firstCar.ID) }},
		{"Cars aggregated:", func() (any, error) { return svcs.Cars.CountByBrand(ctx) }},
		{"Concessionaire created:", func() (any, error) {
			var err error
			dealer, err = svcs.Concessionaires.CreateConcessionaire(ctx, Concessionaire)
			return dealer, err
		}},
		{"Car added to concessionaire", func() (any, error) {
			return nil, svcs.Concessionaires.AddCar(ctx, dealer.ID, firstCar.ID)
		}},
		{"Concessionaire with cars:", func() (any, error) { return svcs.Concessionaires.ViewWithCars(ctx, dealer.ID) }},
	}

	for _, s := range steps {
		if err := step(s.label, s.fn); err != nil {
			return err
		}
	}

	return nil
}

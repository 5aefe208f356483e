// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongodb_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/cars/mongodb"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invalidID = "invalid"

var idProvider = objectid.New()

func newCar(t *testing.T, brand, model, description string) cars.Car {
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	return cars.Car{
		ID:          id,
		Brand:       brand,
		Model:       model,
		Description: description,
	}
}

func cleanup(t *testing.T) {
	_, err := db.Collection(mongodb.Collection).DeleteMany(context.Background(), map[string]any{})
	require.Nil(t, err, fmt.Sprintf("cleaning up cars expected to succeed: %s", err))
}

func TestCarsSave(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	car := newCar(t, "Ford", "Focus", "Coche de empresa")

	cases := []struct {
		desc string
		car  cars.Car
		err  error
	}{
		{
			desc: "save new car",
			car:  car,
			err:  nil,
		},
		{
			desc: "save car without description",
			car:  newCar(t, "Audi", "Rs3", ""),
			err:  nil,
		},
		{
			desc: "save car with existing id",
			car:  car,
			err:  repoerr.ErrConflict,
		},
		{
			desc: "save car with invalid id",
			car:  cars.Car{ID: invalidID, Brand: "Seat", Model: "Ibiza"},
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		saved, err := repo.Save(context.Background(), tc.car)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if tc.err == nil {
			assert.Equal(t, tc.car, saved, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.car, saved))
		}
	}
}

func TestCarsRetrieveByID(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	car, err := repo.Save(context.Background(), newCar(t, "Ford", "Focus", "Coche de empresa"))
	require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))

	nonexistentID, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		id   string
		car  cars.Car
		err  error
	}{
		{
			desc: "retrieve existing car",
			id:   car.ID,
			car:  car,
			err:  nil,
		},
		{
			desc: "retrieve non-existing car",
			id:   nonexistentID,
			err:  repoerr.ErrNotFound,
		},
		{
			desc: "retrieve car with invalid id",
			id:   invalidID,
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		c, err := repo.RetrieveByID(context.Background(), tc.id)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		assert.Equal(t, tc.car, c, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.car, c))
	}
}

func TestCarsRetrieveByIDs(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	focus, err := repo.Save(context.Background(), newCar(t, "Ford", "Focus", ""))
	require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))
	rs3, err := repo.Save(context.Background(), newCar(t, "Audi", "Rs3", ""))
	require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))

	missing, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		ids  []string
		cars []cars.Car
		err  error
	}{
		{
			desc: "retrieve in requested order",
			ids:  []string{rs3.ID, focus.ID},
			cars: []cars.Car{rs3, focus},
		},
		{
			desc: "retrieve skipping missing cars",
			ids:  []string{missing, focus.ID},
			cars: []cars.Car{focus},
		},
		{
			desc: "retrieve only missing cars",
			ids:  []string{missing},
			cars: []cars.Car{},
		},
		{
			desc: "retrieve with invalid id",
			ids:  []string{focus.ID, invalidID},
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		cs, err := repo.RetrieveByIDs(context.Background(), tc.ids)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if tc.err == nil {
			assert.Equal(t, tc.cars, cs, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.cars, cs))
		}
	}
}

func TestCarsRetrieveAll(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	n := uint64(10)
	var saved []cars.Car
	for i := uint64(0); i < n; i++ {
		c, err := repo.Save(context.Background(), newCar(t, "Ford", fmt.Sprintf("Model-%d", i), ""))
		require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))
		saved = append(saved, c)
	}

	cases := []struct {
		desc string
		pm   dealership.PageMetadata
		cars []cars.Car
		err  error
	}{
		{
			desc: "retrieve all cars",
			pm:   dealership.PageMetadata{},
			cars: saved,
		},
		{
			desc: "retrieve first page",
			pm:   dealership.PageMetadata{Offset: 0, Limit: 3},
			cars: saved[:3],
		},
		{
			desc: "retrieve last page",
			pm:   dealership.PageMetadata{Offset: 8, Limit: 5},
			cars: saved[8:],
		},
		{
			desc: "retrieve past the end",
			pm:   dealership.PageMetadata{Offset: 20, Limit: 5},
			cars: []cars.Car{},
		},
		{
			desc: "retrieve with offset out of range",
			pm:   dealership.PageMetadata{Offset: math.MaxUint64},
			err:  repoerr.ErrMalformedEntity,
		},
		{
			desc: "retrieve with limit out of range",
			pm:   dealership.PageMetadata{Limit: math.MaxInt64 + 1},
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		page, err := repo.RetrieveAll(context.Background(), tc.pm)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if tc.err != nil {
			continue
		}
		assert.Equal(t, n, page.Total, fmt.Sprintf("%s: expected total %d got %d\n", tc.desc, n, page.Total))
		assert.Equal(t, tc.cars, page.Cars, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.cars, page.Cars))
	}
}

func TestCarsUpdate(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	car, err := repo.Save(context.Background(), newCar(t, "Ford", "Focus", "Coche de empresa"))
	require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))

	nonexistentID, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	toyota := "Toyota"
	corolla := "Corolla"

	cases := []struct {
		desc   string
		id     string
		update cars.CarUpdate
		car    cars.Car
		err    error
	}{
		{
			desc:   "update brand",
			id:     car.ID,
			update: cars.CarUpdate{Brand: &toyota},
			car:    cars.Car{ID: car.ID, Brand: toyota, Model: "Focus", Description: "Coche de empresa"},
		},
		{
			desc:   "update model keeps previous update",
			id:     car.ID,
			update: cars.CarUpdate{Model: &corolla},
			car:    cars.Car{ID: car.ID, Brand: toyota, Model: corolla, Description: "Coche de empresa"},
		},
		{
			desc:   "empty update returns current car",
			id:     car.ID,
			update: cars.CarUpdate{},
			car:    cars.Car{ID: car.ID, Brand: toyota, Model: corolla, Description: "Coche de empresa"},
		},
		{
			desc:   "update non-existing car",
			id:     nonexistentID,
			update: cars.CarUpdate{Brand: &toyota},
			err:    repoerr.ErrNotFound,
		},
		{
			desc:   "update car with invalid id",
			id:     invalidID,
			update: cars.CarUpdate{Brand: &toyota},
			err:    repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		c, err := repo.Update(context.Background(), tc.id, tc.update)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		assert.Equal(t, tc.car, c, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.car, c))
	}
}

func TestCarsRemove(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	car, err := repo.Save(context.Background(), newCar(t, "Ford", "Focus", "Coche de empresa"))
	require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))

	cases := []struct {
		desc string
		id   string
		car  cars.Car
		err  error
	}{
		{
			desc: "remove existing car",
			id:   car.ID,
			car:  car,
		},
		{
			desc: "remove already removed car",
			id:   car.ID,
			err:  repoerr.ErrNotFound,
		},
		{
			desc: "remove car with invalid id",
			id:   invalidID,
			err:  repoerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		c, err := repo.Remove(context.Background(), tc.id)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		assert.Equal(t, tc.car, c, fmt.Sprintf("%s: expected %v got %v\n", tc.desc, tc.car, c))
	}
}

func TestCarsCountByBrand(t *testing.T) {
	t.Cleanup(func() { cleanup(t) })
	repo := mongodb.NewRepository(db)

	totals, err := repo.CountByBrand(context.Background())
	require.Nil(t, err, fmt.Sprintf("aggregating empty collection expected to succeed: %s", err))
	assert.Equal(t, []cars.BrandTotal{}, totals)

	for _, c := range [][2]string{{"Ford", "Focus"}, {"Audi", "Rs3"}, {"Ford", "Fiesta"}, {"Toyota", "Corolla"}, {"Ford", "Kuga"}} {
		_, err := repo.Save(context.Background(), newCar(t, c[0], c[1], ""))
		require.Nil(t, err, fmt.Sprintf("saving car expected to succeed: %s", err))
	}

	totals, err = repo.CountByBrand(context.Background())
	require.Nil(t, err, fmt.Sprintf("aggregating cars expected to succeed: %s", err))
	expected := []cars.BrandTotal{
		{Brand: "Audi", Total: 1},
		{Brand: "Ford", Total: 3},
		{Brand: "Toyota", Total: 1},
	}
	assert.Equal(t, expected, totals)
}

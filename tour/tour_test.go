// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tour_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/absmach/dealership/cars"
	carmocks "github.com/absmach/dealership/cars/mocks"
	"github.com/absmach/dealership/concessionaires"
	conmocks "github.com/absmach/dealership/concessionaires/mocks"
	"github.com/absmach/dealership/pkg/errors"
	svcerr "github.com/absmach/dealership/pkg/errors/service"
	"github.com/absmach/dealership/tour"
	"github.com/absmach/dealership/users"
	usermocks "github.com/absmach/dealership/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices() tour.Services {
	carsSvc := carmocks.NewService()
	return tour.Services{
		Users:           usermocks.NewService(),
		Cars:            carsSvc,
		Concessionaires: conmocks.NewService(carsSvc),
	}
}

// section returns the JSON printed after label, up to the next label.
func section(t *testing.T, out, label string, next string) string {
	start := strings.Index(out, label)
	require.NotEqual(t, -1, start, fmt.Sprintf("label %q missing from output", label))
	rest := out[start+len(label):]
	if next != "" {
		end := strings.Index(rest, next)
		require.NotEqual(t, -1, end, fmt.Sprintf("label %q missing after %q", next, label))
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func TestRun(t *testing.T) {
	buf := &bytes.Buffer{}
	err := tour.Run(context.Background(), newServices(), buf)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	out := buf.String()

	labels := []string{
		"user1", "user2", "user3", "user4", "user5",
		"Car created:", "Car fetched:", "Cars listed:", "Car updated:",
		"Car deleted:", "Cars aggregated:", "Concessionaire created:",
		"Car added to concessionaire", "Concessionaire with cars:",
	}
	last := -1
	for _, l := range labels {
		idx := strings.Index(out[last+1:], l)
		require.NotEqual(t, -1, idx, fmt.Sprintf("label %q missing or out of order", l))
		last += idx + 1
	}
	assert.Equal(t, 2, strings.Count(out, "Car created:"), "expected two created cars")

	var profile users.Profile
	require.Nil(t, json.Unmarshal([]byte(section(t, out, "user5", "Car created:")), &profile))
	assert.Equal(t, users.Profile{Name: tour.User.Name, Email: tour.User.Email}, profile)

	var updated cars.Car
	require.Nil(t, json.Unmarshal([]byte(section(t, out, "Car updated:", "Car deleted:")), &updated))
	assert.Equal(t, tour.NewBrand, updated.Brand)
	assert.Equal(t, tour.CompanyCar.Model, updated.Model)

	var totals []cars.BrandTotal
	require.Nil(t, json.Unmarshal([]byte(section(t, out, "Cars aggregated:", "Concessionaire created:")), &totals))
	assert.Equal(t, []cars.BrandTotal{{Brand: "Audi", Total: 1}}, totals)

	var populated concessionaires.PopulatedConcessionaire
	require.Nil(t, json.Unmarshal([]byte(section(t, out, "Concessionaire with cars:", "")), &populated))
	assert.Equal(t, tour.Concessionaire.Address, populated.Address)
	assert.Equal(t, []cars.Car{}, populated.Cars, "deleted car must not be populated")
}

type failingUsers struct {
	users.Service
}

func (failingUsers) ViewUserByName(context.Context, string) (users.User, error) {
	return users.User{}, svcerr.ErrNotFound
}

func TestRunStopsAtFirstError(t *testing.T) {
	svcs := newServices()
	svcs.Users = failingUsers{svcs.Users}

	buf := &bytes.Buffer{}
	err := tour.Run(context.Background(), svcs, buf)
	assert.True(t, errors.Contains(err, tour.ErrStep), fmt.Sprintf("expected %s got %s", tour.ErrStep, err))
	assert.True(t, errors.Contains(err, svcerr.ErrNotFound), fmt.Sprintf("expected %s got %s", svcerr.ErrNotFound, err))

	out := buf.String()
	assert.Contains(t, out, "user3")
	assert.NotContains(t, out, "user4")
	assert.NotContains(t, out, "Car created:")
}

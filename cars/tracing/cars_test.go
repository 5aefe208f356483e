// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/absmach/dealership/cars/mocks"
	"github.com/absmach/dealership/cars/tracing"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestCarRepositoryMiddleware(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	repo := tracing.CarRepositoryMiddleware(tp.Tracer("cars"), mocks.NewRepository())

	id, err := objectid.New().ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	brand := "Toyota"
	ctx := context.Background()

	_, err = repo.Save(ctx, cars.Car{ID: id, Brand: "Ford", Model: "Focus"})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	_, _ = repo.RetrieveByID(ctx, id)
	_, _ = repo.RetrieveByIDs(ctx, []string{id})
	_, _ = repo.RetrieveAll(ctx, dealership.PageMetadata{})
	_, _ = repo.Update(ctx, id, cars.CarUpdate{Brand: &brand})
	_, _ = repo.CountByBrand(ctx)
	_, _ = repo.Remove(ctx, id)

	expected := []string{
		"save_car",
		"retrieve_car_by_id",
		"retrieve_cars_by_ids",
		"retrieve_all_cars",
		"update_car",
		"count_cars_by_brand",
		"remove_car",
	}

	spans := sr.Ended()
	require.Len(t, spans, len(expected))
	for i, name := range expected {
		assert.Equal(t, name, spans[i].Name(), fmt.Sprintf("span %d: expected %s got %s\n", i, name, spans[i].Name()))
	}
}

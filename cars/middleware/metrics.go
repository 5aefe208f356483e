// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"github.com/go-kit/kit/metrics"
)

var _ cars.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     cars.Service
}

// MetricsMiddleware instruments the cars service by tracking request count and latency.
func MetricsMiddleware(svc cars.Service, counter metrics.Counter, latency metrics.Histogram) cars.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) CreateCar(ctx context.Context, car cars.Car) (cars.Car, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_car").Add(1)
		ms.latency.With("method", "create_car").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.CreateCar(ctx, car)
}

func (ms *metricsMiddleware) ViewCar(ctx context.Context, id string) (cars.Car, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_car").Add(1)
		ms.latency.With("method", "view_car").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewCar(ctx, id)
}

func (ms *metricsMiddleware) ViewCars(ctx context.Context, ids []string) ([]cars.Car, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_cars").Add(1)
		ms.latency.With("method", "view_cars").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewCars(ctx, ids)
}

func (ms *metricsMiddleware) ListCars(ctx context.Context, pm dealership.PageMetadata) (cars.Page, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_cars").Add(1)
		ms.latency.With("method", "list_cars").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ListCars(ctx, pm)
}

func (ms *metricsMiddleware) UpdateCar(ctx context.Context, id string, cu cars.CarUpdate) (cars.Car, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "update_car").Add(1)
		ms.latency.With("method", "update_car").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.UpdateCar(ctx, id, cu)
}

func (ms *metricsMiddleware) RemoveCar(ctx context.Context, id string) (cars.Car, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "remove_car").Add(1)
		ms.latency.With("method", "remove_car").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.RemoveCar(ctx, id)
}

func (ms *metricsMiddleware) CountByBrand(ctx context.Context) ([]cars.BrandTotal, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "count_by_brand").Add(1)
		ms.latency.With("method", "count_by_brand").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.CountByBrand(ctx)
}

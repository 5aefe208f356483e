// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/dealership/concessionaires"
	"github.com/go-kit/kit/metrics"
)

var _ concessionaires.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     concessionaires.Service
}

// MetricsMiddleware instruments the concessionaires service by tracking request count and latency.
func MetricsMiddleware(svc concessionaires.Service, counter metrics.Counter, latency metrics.Histogram) concessionaires.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) CreateConcessionaire(ctx context.Context, c concessionaires.Concessionaire) (concessionaires.Concessionaire, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_concessionaire").Add(1)
		ms.latency.With("method", "create_concessionaire").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.CreateConcessionaire(ctx, c)
}

func (ms *metricsMiddleware) AddCar(ctx context.Context, id, carID string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "add_car").Add(1)
		ms.latency.With("method", "add_car").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.AddCar(ctx, id, carID)
}

func (ms *metricsMiddleware) ViewConcessionaire(ctx context.Context, id string) (concessionaires.Concessionaire, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_concessionaire").Add(1)
		ms.latency.With("method", "view_concessionaire").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewConcessionaire(ctx, id)
}

func (ms *metricsMiddleware) ViewWithCars(ctx context.Context, id string) (concessionaires.PopulatedConcessionaire, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_with_cars").Add(1)
		ms.latency.With("method", "view_with_cars").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewWithCars(ctx, id)
}

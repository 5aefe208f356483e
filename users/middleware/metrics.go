// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/users"
	"github.com/go-kit/kit/metrics"
)

var _ users.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     users.Service
}

// MetricsMiddleware instruments the users service by tracking request count and latency.
func MetricsMiddleware(svc users.Service, counter metrics.Counter, latency metrics.Histogram) users.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) CreateUser(ctx context.Context, user users.User) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "create_user").Add(1)
		ms.latency.With("method", "create_user").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.CreateUser(ctx, user)
}

func (ms *metricsMiddleware) ViewUser(ctx context.Context, id string) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_user").Add(1)
		ms.latency.With("method", "view_user").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewUser(ctx, id)
}

func (ms *metricsMiddleware) ViewUserByName(ctx context.Context, name string) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_user_by_name").Add(1)
		ms.latency.With("method", "view_user_by_name").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewUserByName(ctx, name)
}

func (ms *metricsMiddleware) ViewProfile(ctx context.Context, name string) (users.Profile, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_profile").Add(1)
		ms.latency.With("method", "view_profile").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ViewProfile(ctx, name)
}

func (ms *metricsMiddleware) ListUsers(ctx context.Context, pm dealership.PageMetadata) (users.Page, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_users").Add(1)
		ms.latency.With("method", "list_users").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.ListUsers(ctx, pm)
}

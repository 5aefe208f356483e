// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
)

var _ cars.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    cars.Service
}

// LoggingMiddleware adds logging facilities to the cars service.
func LoggingMiddleware(svc cars.Service, logger *slog.Logger) cars.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) CreateCar(ctx context.Context, car cars.Car) (saved cars.Car, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("car",
				slog.String("id", saved.ID),
				slog.String("brand", car.Brand),
				slog.String("model", car.Model),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create car failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Create car completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateCar(ctx, car)
}

func (lm *loggingMiddleware) ViewCar(ctx context.Context, id string) (car cars.Car, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("car_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View car failed to complete successfully", args...)
			return
		}
		lm.logger.Info("View car completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewCar(ctx, id)
}

func (lm *loggingMiddleware) ViewCars(ctx context.Context, ids []string) (cs []cars.Car, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Any("car_ids", ids),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View cars failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Int("found", len(cs)))
		lm.logger.Info("View cars completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewCars(ctx, ids)
}

func (lm *loggingMiddleware) ListCars(ctx context.Context, pm dealership.PageMetadata) (page cars.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List cars failed to complete successfully", args...)
			return
		}
		lm.logger.Info("List cars completed successfully", args...)
	}(time.Now())

	return lm.svc.ListCars(ctx, pm)
}

func (lm *loggingMiddleware) UpdateCar(ctx context.Context, id string, cu cars.CarUpdate) (car cars.Car, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("car_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update car failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Update car completed successfully", args...)
	}(time.Now())

	return lm.svc.UpdateCar(ctx, id, cu)
}

func (lm *loggingMiddleware) RemoveCar(ctx context.Context, id string) (car cars.Car, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("car_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove car failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Remove car completed successfully", args...)
	}(time.Now())

	return lm.svc.RemoveCar(ctx, id)
}

func (lm *loggingMiddleware) CountByBrand(ctx context.Context) (totals []cars.BrandTotal, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Count cars by brand failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Int("brands", len(totals)))
		lm.logger.Info("Count cars by brand completed successfully", args...)
	}(time.Now())

	return lm.svc.CountByBrand(ctx)
}

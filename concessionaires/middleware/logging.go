// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/dealership/concessionaires"
)

var _ concessionaires.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    concessionaires.Service
}

// LoggingMiddleware adds logging facilities to the concessionaires service.
func LoggingMiddleware(svc concessionaires.Service, logger *slog.Logger) concessionaires.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) CreateConcessionaire(ctx context.Context, c concessionaires.Concessionaire) (saved concessionaires.Concessionaire, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("concessionaire",
				slog.String("id", saved.ID),
				slog.String("name", c.Name),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create concessionaire failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Create concessionaire completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateConcessionaire(ctx, c)
}

func (lm *loggingMiddleware) AddCar(ctx context.Context, id, carID string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("concessionaire_id", id),
			slog.String("car_id", carID),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Add car to concessionaire failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Add car to concessionaire completed successfully", args...)
	}(time.Now())

	return lm.svc.AddCar(ctx, id, carID)
}

func (lm *loggingMiddleware) ViewConcessionaire(ctx context.Context, id string) (c concessionaires.Concessionaire, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("concessionaire_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View concessionaire failed to complete successfully", args...)
			return
		}
		lm.logger.Info("View concessionaire completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewConcessionaire(ctx, id)
}

func (lm *loggingMiddleware) ViewWithCars(ctx context.Context, id string) (pc concessionaires.PopulatedConcessionaire, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("concessionaire_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View concessionaire with cars failed to complete successfully", args...)
			return
		}
		args = append(args, slog.Int("cars", len(pc.Cars)))
		lm.logger.Info("View concessionaire with cars completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewWithCars(ctx, id)
}

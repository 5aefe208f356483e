// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/users"
)

var _ users.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    users.Service
}

// LoggingMiddleware adds logging facilities to the users service.
func LoggingMiddleware(svc users.Service, logger *slog.Logger) users.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) CreateUser(ctx context.Context, user users.User) (saved users.User, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("user",
				slog.String("id", saved.ID),
				slog.String("name", user.Name),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Create user failed to complete successfully", args...)
			return
		}
		lm.logger.Info("Create user completed successfully", args...)
	}(time.Now())

	return lm.svc.CreateUser(ctx, user)
}

func (lm *loggingMiddleware) ViewUser(ctx context.Context, id string) (user users.User, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("user_id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View user failed to complete successfully", args...)
			return
		}
		lm.logger.Info("View user completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewUser(ctx, id)
}

func (lm *loggingMiddleware) ViewUserByName(ctx context.Context, name string) (user users.User, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("name", name),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View user by name failed to complete successfully", args...)
			return
		}
		args = append(args, slog.String("user_id", user.ID))
		lm.logger.Info("View user by name completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewUserByName(ctx, name)
}

func (lm *loggingMiddleware) ViewProfile(ctx context.Context, name string) (p users.Profile, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("name", name),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View profile failed to complete successfully", args...)
			return
		}
		lm.logger.Info("View profile completed successfully", args...)
	}(time.Now())

	return lm.svc.ViewProfile(ctx, name)
}

func (lm *loggingMiddleware) ListUsers(ctx context.Context, pm dealership.PageMetadata) (page users.Page, err error) {
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
			lm.logger.Warn("List users failed to complete successfully", args...)
			return
		}
		lm.logger.Info("List users completed successfully", args...)
	}(time.Now())

	return lm.svc.ListUsers(ctx, pm)
}

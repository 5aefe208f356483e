// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/users"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveUserOp           = "save_user"
	retrieveUserByIDOp   = "retrieve_user_by_id"
	retrieveUserByNameOp = "retrieve_user_by_name"
	retrieveProfileOp    = "retrieve_profile"
	retrieveAllUsersOp   = "retrieve_all_users"
)

var _ users.Repository = (*userRepositoryMiddleware)(nil)

type userRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   users.Repository
}

// UserRepositoryMiddleware adds a span to the context of every repository call.
func UserRepositoryMiddleware(tracer trace.Tracer, repo users.Repository) users.Repository {
	return userRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (urm userRepositoryMiddleware) Save(ctx context.Context, user users.User) (users.User, error) {
	ctx, span := urm.tracer.Start(ctx, saveUserOp, trace.WithAttributes(attribute.String("id", user.ID)))
	defer span.End()

	return urm.repo.Save(ctx, user)
}

func (urm userRepositoryMiddleware) RetrieveByID(ctx context.Context, id string) (users.User, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveUserByIDOp, trace.WithAttributes(attribute.String("id", id)))
	defer span.End()

	return urm.repo.RetrieveByID(ctx, id)
}

func (urm userRepositoryMiddleware) RetrieveByName(ctx context.Context, name string) (users.User, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveUserByNameOp, trace.WithAttributes(attribute.String("name", name)))
	defer span.End()

	return urm.repo.RetrieveByName(ctx, name)
}

func (urm userRepositoryMiddleware) RetrieveProfile(ctx context.Context, name string) (users.Profile, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveProfileOp, trace.WithAttributes(attribute.String("name", name)))
	defer span.End()

	return urm.repo.RetrieveProfile(ctx, name)
}

func (urm userRepositoryMiddleware) RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (users.Page, error) {
	ctx, span := urm.tracer.Start(ctx, retrieveAllUsersOp, trace.WithAttributes(
		attribute.Int64("offset", int64(pm.Offset)),
		attribute.Int64("limit", int64(pm.Limit)),
	))
	defer span.End()

	return urm.repo.RetrieveAll(ctx, pm)
}

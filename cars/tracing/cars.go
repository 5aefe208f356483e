// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveCarOp           = "save_car"
	retrieveCarByIDOp   = "retrieve_car_by_id"
	retrieveCarsByIDsOp = "retrieve_cars_by_ids"
	retrieveAllCarsOp   = "retrieve_all_cars"
	updateCarOp         = "update_car"
	removeCarOp         = "remove_car"
	countByBrandOp      = "count_cars_by_brand"
)

var _ cars.Repository = (*carRepositoryMiddleware)(nil)

type carRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   cars.Repository
}

// CarRepositoryMiddleware adds a span to the context of every repository call.
func CarRepositoryMiddleware(tracer trace.Tracer, repo cars.Repository) cars.Repository {
	return carRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (crm carRepositoryMiddleware) Save(ctx context.Context, car cars.Car) (cars.Car, error) {
	ctx, span := createSpan(ctx, crm.tracer, saveCarOp, attribute.String("id", car.ID))
	defer span.End()

	return crm.repo.Save(ctx, car)
}

func (crm carRepositoryMiddleware) RetrieveByID(ctx context.Context, id string) (cars.Car, error) {
	ctx, span := createSpan(ctx, crm.tracer, retrieveCarByIDOp, attribute.String("id", id))
	defer span.End()

	return crm.repo.RetrieveByID(ctx, id)
}

func (crm carRepositoryMiddleware) RetrieveByIDs(ctx context.Context, ids []string) ([]cars.Car, error) {
	ctx, span := createSpan(ctx, crm.tracer, retrieveCarsByIDsOp, attribute.StringSlice("ids", ids))
	defer span.End()

	return crm.repo.RetrieveByIDs(ctx, ids)
}

func (crm carRepositoryMiddleware) RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (cars.Page, error) {
	ctx, span := createSpan(ctx, crm.tracer, retrieveAllCarsOp,
		attribute.Int64("offset", int64(pm.Offset)),
		attribute.Int64("limit", int64(pm.Limit)),
	)
	defer span.End()

	return crm.repo.RetrieveAll(ctx, pm)
}

func (crm carRepositoryMiddleware) Update(ctx context.Context, id string, cu cars.CarUpdate) (cars.Car, error) {
	ctx, span := createSpan(ctx, crm.tracer, updateCarOp, attribute.String("id", id))
	defer span.End()

	return crm.repo.Update(ctx, id, cu)
}

func (crm carRepositoryMiddleware) Remove(ctx context.Context, id string) (cars.Car, error) {
	ctx, span := createSpan(ctx, crm.tracer, removeCarOp, attribute.String("id", id))
	defer span.End()

	return crm.repo.Remove(ctx, id)
}

func (crm carRepositoryMiddleware) CountByBrand(ctx context.Context) ([]cars.BrandTotal, error) {
	ctx, span := createSpan(ctx, crm.tracer, countByBrandOp)
	defer span.End()

	return crm.repo.CountByBrand(ctx)
}

func createSpan(ctx context.Context, tracer trace.Tracer, opName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, opName, trace.WithAttributes(attrs...))
}

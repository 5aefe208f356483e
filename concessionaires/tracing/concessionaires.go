// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/absmach/dealership/concessionaires"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveConcessionaireOp     = "save_concessionaire"
	retrieveConcessionaireOp = "retrieve_concessionaire_by_id"
	addCarOp                 = "add_car_to_concessionaire"
)

var _ concessionaires.Repository = (*concessionaireRepositoryMiddleware)(nil)

type concessionaireRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   concessionaires.Repository
}

// ConcessionaireRepositoryMiddleware adds a span to the context of every
// repository call.
func ConcessionaireRepositoryMiddleware(tracer trace.Tracer, repo concessionaires.Repository) concessionaires.Repository {
	return concessionaireRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (crm concessionaireRepositoryMiddleware) Save(ctx context.Context, c concessionaires.Concessionaire) (concessionaires.Concessionaire, error) {
	ctx, span := crm.tracer.Start(ctx, saveConcessionaireOp, trace.WithAttributes(
		attribute.String("id", c.ID),
		attribute.Int("cars", len(c.Cars)),
	))
	defer span.End()

	return crm.repo.Save(ctx, c)
}

func (crm concessionaireRepositoryMiddleware) RetrieveByID(ctx context.Context, id string) (concessionaires.Concessionaire, error) {
	ctx, span := crm.tracer.Start(ctx, retrieveConcessionaireOp, trace.WithAttributes(attribute.String("id", id)))
	defer span.End()

	return crm.repo.RetrieveByID(ctx, id)
}

func (crm concessionaireRepositoryMiddleware) AddCar(ctx context.Context, id, carID string) error {
	ctx, span := crm.tracer.Start(ctx, addCarOp, trace.WithAttributes(
		attribute.String("id", id),
		attribute.String("car_id", carID),
	))
	defer span.End()

	return crm.repo.AddCar(ctx, id, carID)
}

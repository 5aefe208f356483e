// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/absmach/dealership/users"
	"github.com/absmach/dealership/users/mocks"
	"github.com/absmach/dealership/users/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestUserRepositoryMiddleware(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	repo := tracing.UserRepositoryMiddleware(tp.Tracer("users"), mocks.NewRepository())

	id, err := objectid.New().ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	ctx := context.Background()

	_, err = repo.Save(ctx, users.User{ID: id, Name: "Bill", Email: "bill@initech.com"})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	_, _ = repo.RetrieveByID(ctx, id)
	_, _ = repo.RetrieveByName(ctx, "Bill")
	_, _ = repo.RetrieveProfile(ctx, "Bill")
	_, _ = repo.RetrieveAll(ctx, dealership.PageMetadata{Limit: 10})

	expected := []string{
		"save_user",
		"retrieve_user_by_id",
		"retrieve_user_by_name",
		"retrieve_profile",
		"retrieve_all_users",
	}

	spans := sr.Ended()
	require.Len(t, spans, len(expected))
	for i, name := range expected {
		assert.Equal(t, name, spans[i].Name(), fmt.Sprintf("span %d: expected %s got %s\n", i, name, spans[i].Name()))
	}
}

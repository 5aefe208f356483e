// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mongo contains helpers shared by the MongoDB repositories.
package mongo

import (
	stderrors "errors"

	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleError maps driver errors onto repository errors. Errors without a
// dedicated repository error are wrapped with wrapper.
func HandleError(wrapper, err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, mongo.ErrNoDocuments):
		return repoerr.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(repoerr.ErrConflict, err)
	default:
		return errors.Wrap(wrapper, err)
	}
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package objectid provides MongoDB ObjectID based identifiers. Document
// identifiers travel through the services as 24 character hex strings and
// are converted back to ObjectIDs at the repository boundary.
package objectid

import (
	"github.com/absmach/dealership"
	"github.com/absmach/dealership/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ dealership.IDProvider = (*provider)(nil)

type provider struct{}

// New instantiates an ObjectID provider.
func New() dealership.IDProvider {
	return &provider{}
}

func (p *provider) ID() (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

// Parse converts a hex identifier into an ObjectID.
func Parse(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(errors.ErrInvalidID, err)
	}

	return oid, nil
}

// ParseAll converts hex identifiers into ObjectIDs, keeping their order.
func ParseAll(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := Parse(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	return oids, nil
}

// Hexes converts ObjectIDs back to their hex form.
func Hexes(oids []primitive.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}

	return ids
}

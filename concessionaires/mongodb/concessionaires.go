// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"

	"github.com/absmach/dealership/concessionaires"
	mgo "github.com/absmach/dealership/internal/mongo"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the name of the collection holding concessionaire documents.
const Collection = "concessionaires"

type concessionaireRepository struct {
	db *mongo.Database
}

var _ concessionaires.Repository = (*concessionaireRepository)(nil)

// NewRepository instantiates a MongoDB implementation of concessionaire
// repository.
func NewRepository(db *mongo.Database) concessionaires.Repository {
	return &concessionaireRepository{
		db: db,
	}
}

func (cr *concessionaireRepository) Save(ctx context.Context, c concessionaires.Concessionaire) (concessionaires.Concessionaire, error) {
	oid, err := objectid.Parse(c.ID)
	if err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	carIDs, err := objectid.ParseAll(c.Cars)
	if err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	dbc := dbConcessionaire{
		ID:      oid,
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
		Cars:    carIDs,
	}

	coll := cr.db.Collection(Collection)
	if _, err := coll.InsertOne(ctx, dbc); err != nil {
		return concessionaires.Concessionaire{}, mgo.HandleError(repoerr.ErrCreateEntity, err)
	}

	return toConcessionaire(dbc), nil
}

func (cr *concessionaireRepository) RetrieveByID(ctx context.Context, id string) (concessionaires.Concessionaire, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return concessionaires.Concessionaire{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)

	var dbc dbConcessionaire
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbc); err != nil {
		return concessionaires.Concessionaire{}, mgo.HandleError(repoerr.ErrViewEntity, err)
	}

	return toConcessionaire(dbc), nil
}

func (cr *concessionaireRepository) AddCar(ctx context.Context, id, carID string) error {
	oid, err := objectid.Parse(id)
	if err != nil {
		return errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	carOID, err := objectid.Parse(carID)
	if err != nil {
		return errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)
	update := bson.M{"$push": bson.M{"cars": carOID}}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return mgo.HandleError(repoerr.ErrUpdateEntity, err)
	}
	if res.MatchedCount < 1 {
		return repoerr.ErrNotFound
	}

	return nil
}

type dbConcessionaire struct {
	ID      primitive.ObjectID   `bson:"_id"`
	Name    string               `bson:"name"`
	Email   string               `bson:"email"`
	Address string               `bson:"address"`
	Cars    []primitive.ObjectID `bson:"cars"`
}

func toConcessionaire(dbc dbConcessionaire) concessionaires.Concessionaire {
	return concessionaires.Concessionaire{
		ID:      dbc.ID.Hex(),
		Name:    dbc.Name,
		Email:   dbc.Email,
		Address: dbc.Address,
		Cars:    objectid.Hexes(dbc.Cars),
	}
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"

	"github.com/absmach/dealership"
	"github.com/absmach/dealership/cars"
	mgo "github.com/absmach/dealership/internal/mongo"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the collection holding car documents.
const Collection = "cars"

type carRepository struct {
	db *mongo.Database
}

var _ cars.Repository = (*carRepository)(nil)

// NewRepository instantiates a MongoDB implementation of car repository.
func NewRepository(db *mongo.Database) cars.Repository {
	return &carRepository{
		db: db,
	}
}

func (cr *carRepository) Save(ctx context.Context, car cars.Car) (cars.Car, error) {
	dbc, err := toDBCar(car)
	if err != nil {
		return cars.Car{}, err
	}

	coll := cr.db.Collection(Collection)
	if _, err := coll.InsertOne(ctx, dbc); err != nil {
		return cars.Car{}, mgo.HandleError(repoerr.ErrCreateEntity, err)
	}

	return toCar(dbc), nil
}

func (cr *carRepository) RetrieveByID(ctx context.Context, id string) (cars.Car, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return cars.Car{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)

	var dbc dbCar
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbc); err != nil {
		return cars.Car{}, mgo.HandleError(repoerr.ErrViewEntity, err)
	}

	return toCar(dbc), nil
}

func (cr *carRepository) RetrieveByIDs(ctx context.Context, ids []string) ([]cars.Car, error) {
	oids, err := objectid.ParseAll(ids)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)
	cur, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	found, err := decodeCars(ctx, cur)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]cars.Car, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	results := []cars.Car{}
	for _, oid := range oids {
		if c, ok := byID[oid.Hex()]; ok {
			results = append(results, c)
		}
	}

	return results, nil
}

func (cr *carRepository) RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (cars.Page, error) {
	if err := pm.Validate(); err != nil {
		return cars.Page{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "_id", Value: 1}})
	findOptions.SetSkip(int64(pm.Offset))
	if pm.Limit > 0 {
		findOptions.SetLimit(int64(pm.Limit))
	}

	filter := bson.D{}
	cur, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return cars.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	results, err := decodeCars(ctx, cur)
	if err != nil {
		return cars.Page{}, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return cars.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return cars.Page{
		Cars: results,
		PageMetadata: dealership.PageMetadata{
			Total:  uint64(total),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
	}, nil
}

func (cr *carRepository) Update(ctx context.Context, id string, cu cars.CarUpdate) (cars.Car, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return cars.Car{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	set := bson.D{}
	if cu.Brand != nil {
		set = append(set, bson.E{Key: "brand", Value: *cu.Brand})
	}
	if cu.Model != nil {
		set = append(set, bson.E{Key: "model", Value: *cu.Model})
	}
	if cu.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *cu.Description})
	}
	if len(set) == 0 {
		return cr.RetrieveByID(ctx, id)
	}

	coll := cr.db.Collection(Collection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dbc dbCar
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&dbc); err != nil {
		return cars.Car{}, mgo.HandleError(repoerr.ErrUpdateEntity, err)
	}

	return toCar(dbc), nil
}

func (cr *carRepository) Remove(ctx context.Context, id string) (cars.Car, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return cars.Car{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := cr.db.Collection(Collection)

	var dbc dbCar
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&dbc); err != nil {
		return cars.Car{}, mgo.HandleError(repoerr.ErrRemoveEntity, err)
	}

	return toCar(dbc), nil
}

func (cr *carRepository) CountByBrand(ctx context.Context) ([]cars.BrandTotal, error) {
	coll := cr.db.Collection(Collection)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$brand"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrAggregate, err)
	}
	defer cur.Close(ctx)

	totals := []cars.BrandTotal{}
	for cur.Next(ctx) {
		var row dbBrandTotal
		if err := cur.Decode(&row); err != nil {
			return nil, errors.Wrap(repoerr.ErrAggregate, err)
		}
		totals = append(totals, cars.BrandTotal{Brand: row.Brand, Total: uint64(row.Total)})
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(repoerr.ErrAggregate, err)
	}

	return totals, nil
}

type dbCar struct {
	ID          primitive.ObjectID `bson:"_id"`
	Brand       string             `bson:"brand"`
	Model       string             `bson:"model"`
	Description string             `bson:"description,omitempty"`
}

type dbBrandTotal struct {
	Brand string `bson:"_id"`
	Total int64  `bson:"total"`
}

func toDBCar(car cars.Car) (dbCar, error) {
	oid, err := objectid.Parse(car.ID)
	if err != nil {
		return dbCar{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	return dbCar{
		ID:          oid,
		Brand:       car.Brand,
		Model:       car.Model,
		Description: car.Description,
	}, nil
}

func toCar(dbc dbCar) cars.Car {
	return cars.Car{
		ID:          dbc.ID.Hex(),
		Brand:       dbc.Brand,
		Model:       dbc.Model,
		Description: dbc.Description,
	}
}

func decodeCars(ctx context.Context, cur *mongo.Cursor) ([]cars.Car, error) {
	defer cur.Close(ctx)

	results := []cars.Car{}
	for cur.Next(ctx) {
		var elem dbCar
		if err := cur.Decode(&elem); err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		results = append(results, toCar(elem))
	}

	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return results, nil
}

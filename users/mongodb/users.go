// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains the MongoDB implementation of the users
// repository.
package mongodb

import (
	"context"

	"github.com/absmach/dealership"
	mgo "github.com/absmach/dealership/internal/mongo"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/absmach/dealership/pkg/objectid"
	"github.com/absmach/dealership/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the collection holding user documents.
const Collection = "users"

// Documents with the same name are resolved in insertion order, which
// ObjectIDs generated on save follow.
var insertionOrder = bson.D{{Key: "_id", Value: 1}}

type userRepository struct {
	db *mongo.Database
}

var _ users.Repository = (*userRepository)(nil)

// NewRepository instantiates a MongoDB implementation of user repository.
func NewRepository(db *mongo.Database) users.Repository {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) Save(ctx context.Context, user users.User) (users.User, error) {
	oid, err := objectid.Parse(user.ID)
	if err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	dbu := dbUser{
		ID:     oid,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}

	coll := ur.db.Collection(Collection)
	if _, err := coll.InsertOne(ctx, dbu); err != nil {
		return users.User{}, mgo.HandleError(repoerr.ErrCreateEntity, err)
	}

	return toUser(dbu), nil
}

func (ur *userRepository) RetrieveByID(ctx context.Context, id string) (users.User, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	return ur.retrieveOne(ctx, bson.M{"_id": oid})
}

func (ur *userRepository) RetrieveByName(ctx context.Context, name string) (users.User, error) {
	return ur.retrieveOne(ctx, bson.M{"name": name})
}

func (ur *userRepository) RetrieveProfile(ctx context.Context, name string) (users.Profile, error) {
	coll := ur.db.Collection(Collection)
	opts := options.FindOne().
		SetSort(insertionOrder).
		SetProjection(bson.D{{Key: "_id", Value: 0}, {Key: "name", Value: 1}, {Key: "email", Value: 1}})

	// Decoded straight into a raw document, the lean counterpart of a model.
	var raw bson.M
	if err := coll.FindOne(ctx, bson.M{"name": name}, opts).Decode(&raw); err != nil {
		return users.Profile{}, mgo.HandleError(repoerr.ErrViewEntity, err)
	}

	var p users.Profile
	p.Name, _ = raw["name"].(string)
	p.Email, _ = raw["email"].(string)

	return p, nil
}

func (ur *userRepository) RetrieveAll(ctx context.Context, pm dealership.PageMetadata) (users.Page, error) {
	if err := pm.Validate(); err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	coll := ur.db.Collection(Collection)

	findOptions := options.Find()
	findOptions.SetSort(insertionOrder)
	findOptions.SetSkip(int64(pm.Offset))
	if pm.Limit > 0 {
		findOptions.SetLimit(int64(pm.Limit))
	}

	filter := bson.D{}
	cur, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	defer cur.Close(ctx)

	results := []users.User{}
	for cur.Next(ctx) {
		var elem dbUser
		if err := cur.Decode(&elem); err != nil {
			return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		results = append(results, toUser(elem))
	}
	if err := cur.Err(); err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return users.Page{
		Users: results,
		PageMetadata: dealership.PageMetadata{
			Total:  uint64(total),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
	}, nil
}

func (ur *userRepository) retrieveOne(ctx context.Context, filter bson.M) (users.User, error) {
	coll := ur.db.Collection(Collection)

	var dbu dbUser
	if err := coll.FindOne(ctx, filter, options.FindOne().SetSort(insertionOrder)).Decode(&dbu); err != nil {
		return users.User{}, mgo.HandleError(repoerr.ErrViewEntity, err)
	}

	return toUser(dbu), nil
}

type dbUser struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Email  string             `bson:"email"`
	Avatar string             `bson:"avatar,omitempty"`
}

func toUser(dbu dbUser) users.User {
	return users.User{
		ID:     dbu.ID.Hex(),
		Name:   dbu.Name,
		Email:  dbu.Email,
		Avatar: dbu.Avatar,
	}
}

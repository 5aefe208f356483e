// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/absmach/dealership/pkg/errors"
	"github.com/caarlos0/env/v10"
	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	errConfig  = errors.New("failed to load mongodb configuration")
	errConnect = errors.New("failed to connect to mongodb server")
	errPing    = errors.New("mongodb server is not reachable")
)

// Config defines the options that are used when connecting to a MongoDB instance.
type Config struct {
	Host           string        `env:"HOST"            envDefault:"127.0.0.1"`
	Port           string        `env:"PORT"            envDefault:"27017"`
	Name           string        `env:"NAME"            envDefault:"test"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// URL returns the connection string for the configured instance.
func (cfg Config) URL() string {
	return fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
}

// Connect creates a connection to the MongoDB instance.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL()))
	if err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	db := client.Database(cfg.Name)
	return db, nil
}

// Ping waits until the server behind db answers, retrying with exponential
// backoff for at most cfg.ConnectTimeout.
func Ping(ctx context.Context, db *mongo.Database, cfg Config, notify backoff.Notify) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.ConnectTimeout

	op := func() error {
		return db.Client().Ping(ctx, readpref.Primary())
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify); err != nil {
		return errors.Wrap(errPing, err)
	}

	return nil
}

// Setup load configuration from environment, create new MongoDB client and connect to MongoDB server.
func Setup(ctx context.Context, envPrefix string, notify backoff.Notify) (*mongo.Database, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, errors.Wrap(errConfig, err)
	}

	return SetupWithConfig(ctx, cfg, notify)
}

// SetupWithConfig connects to the server described by cfg and waits for it
// to become reachable.
func SetupWithConfig(ctx context.Context, cfg Config, notify backoff.Notify) (*mongo.Database, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := Ping(ctx, db, cfg, notify); err != nil {
		_ = db.Client().Disconnect(ctx)
		return nil, err
	}

	return db, nil
}

// Close disconnects the client behind db.
func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongodb_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDB = "test"

var db *mongo.Database

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}

	container, err := pool.Run("mongo", "7.0", nil)
	if err != nil {
		log.Fatalf("Could not start container: %s", err)
	}

	addr := fmt.Sprintf("mongodb://localhost:%s", container.GetPort("27017/tcp"))

	var client *mongo.Client
	if err := pool.Retry(func() error {
		client, err = mongo.Connect(context.Background(), options.Client().ApplyURI(addr))
		if err != nil {
			return err
		}

		return client.Ping(context.Background(), nil)
	}); err != nil {
		log.Fatalf("Could not connect to docker: %s", err)
	}
	db = client.Database(testDB)

	code := m.Run()

	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("Could not disconnect from mongo: %s", err)
	}
	if err := pool.Purge(container); err != nil {
		log.Fatalf("Could not purge container: %s", err)
	}

	os.Exit(code)
}

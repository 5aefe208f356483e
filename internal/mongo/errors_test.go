// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mongo_test

import (
	"fmt"
	"testing"

	"github.com/absmach/dealership/internal/mongo"
	"github.com/absmach/dealership/pkg/errors"
	repoerr "github.com/absmach/dealership/pkg/errors/repository"
	"github.com/stretchr/testify/assert"
	driver "go.mongodb.org/mongo-driver/mongo"
)

func TestHandleError(t *testing.T) {
	errTimeout := errors.New("server selection timeout")
	duplicate := driver.WriteException{
		WriteErrors: driver.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	cases := []struct {
		desc    string
		wrapper error
		err     error
		res     error
	}{
		{
			desc:    "nil error",
			wrapper: repoerr.ErrViewEntity,
			err:     nil,
			res:     nil,
		},
		{
			desc:    "no documents",
			wrapper: repoerr.ErrViewEntity,
			err:     driver.ErrNoDocuments,
			res:     repoerr.ErrNotFound,
		},
		{
			desc:    "duplicate key",
			wrapper: repoerr.ErrCreateEntity,
			err:     duplicate,
			res:     repoerr.ErrConflict,
		},
		{
			desc:    "other driver error",
			wrapper: repoerr.ErrUpdateEntity,
			err:     errTimeout,
			res:     repoerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		err := mongo.HandleError(tc.wrapper, tc.err)
		assert.True(t, errors.Contains(err, tc.res), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.res, err))
	}
}

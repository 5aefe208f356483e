// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package uuid_test

import (
	"fmt"
	"testing"

	"github.com/absmach/dealership/pkg/uuid"
	gofrs "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	idp := uuid.New()
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id, err := idp.ID()
		require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

		parsed, err := gofrs.FromString(id)
		require.Nil(t, err, fmt.Sprintf("expected a valid uuid got %s", id))
		assert.Equal(t, byte(gofrs.V4), parsed.Version(), "expected version 4 uuid")
		assert.False(t, seen[id], fmt.Sprintf("duplicated id %s", id))
		seen[id] = true
	}
}

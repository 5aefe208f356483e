// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dealership

import (
	"math"

	"github.com/absmach/dealership/pkg/errors"
)

// PageMetadata contains page metadata that helps navigation.
// A zero Limit means no limit.
type PageMetadata struct {
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// Validate checks that Offset and Limit fit the signed skip and limit
// values accepted by MongoDB.
func (pm PageMetadata) Validate() error {
	if pm.Offset > math.MaxInt64 || pm.Limit > math.MaxInt64 {
		return errors.ErrPageOverflow
	}

	return nil
}

// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cars contains the domain concept definitions needed to support
// the cars service: creating, reading, updating and deleting car documents
// and counting them per brand.
package cars

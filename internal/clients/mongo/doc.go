// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mongo contains the environment backed configuration and the
// connection helpers for the MongoDB instance the services store their
// documents in.
package mongo

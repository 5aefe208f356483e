// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package dealership contains types shared by the users, cars and
// concessionaires services. Each service keeps its documents in its own
// MongoDB collection.
package dealership

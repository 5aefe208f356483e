// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

// ErrInvalidID indicates an identifier that is not a valid document id.
var ErrInvalidID = New("invalid document identifier")

// ErrPageOverflow indicates an offset or limit that MongoDB cannot represent.
var ErrPageOverflow = New("page offset or limit out of range")

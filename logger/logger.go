// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger creates the structured loggers shared by the dealership
// services and command line tools.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w at the given level.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, fmt.Errorf("%w: %q", err, levelText)
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.Slog(),
	})

	return slog.New(logHandler), nil
}

// ExitWithError closes the current process with error code.
func ExitWithError(code *int) {
	os.Exit(*code)
}

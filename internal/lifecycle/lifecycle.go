// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package lifecycle ties the command run to process signals.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// StopSignalHandler cancels ctx when the process receives SIGINT, SIGTERM
// or SIGABRT. It returns once ctx is done.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		defer cancel()
		logger.Info(fmt.Sprintf("%s shutdown by signal: %s", svcName, sig))
		return fmt.Errorf("%s interrupted by signal: %s", svcName, sig)
	case <-ctx.Done():
		return nil
	}
}

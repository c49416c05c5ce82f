// Copyright (C) 2026  The piii-release Authors
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"context"
	"fmt"
	"io"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
)

// DefaultLogLevel is the level that WithLogLevel callers should default to.
const DefaultLogLevel = "info"

// WithLogLevel returns a Context that dlog logs to `out` at the named level ("error", "warn",
// "info", "debug", "trace").
//
// Logs go to `out` (usually stderr) so that stdout is left for the machine-readable output of the
// command.
func WithLogLevel(ctx context.Context, out io.Writer, level string) (context.Context, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return ctx, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return dlog.WithLogger(ctx, dlog.WrapLogrus(logger)), nil
}

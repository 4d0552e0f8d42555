// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/aibor/vmargv/internal/config"
	"github.com/aibor/vmargv/internal/resource"
)

const localConfigFile = ".vmargv-args"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func handleRunError(err error, logger *slog.Logger) int {
	switch {
	case errors.Is(err, &ParseArgsError{}):
		logger.Error(err.Error() + ", see --help")
	case errors.Is(err, &config.ValidationError{}):
		logger.Error("Invalid snapshot", slog.Any("error", err))
	case errors.Is(err, resource.ErrResourceMissing):
		logger.Error("Bundled resources incomplete, check --resources",
			slog.Any("error", err))
	default:
		logger.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	logger := newLogger(cfg.Stderr, false)

	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return handleRunError(err, logger)
	}

	root := newRootCommand(cfg, version())
	root.SetArgs(args[1:])

	err = root.ExecuteContext(ctx)
	if err != nil {
		return handleRunError(err, logger)
	}

	return 0
}

func version() string {
	buildInfo, err := getBuildInfo()
	if err != nil {
		return "unknown"
	}

	return buildInfo.Main.Version
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/aibor/vmargv/internal/sys"
)

// Resolver resolves paths of bundled resources and per virtual machine
// files.
type Resolver interface {
	// ResourcePath returns the absolute path of the bundled resource with
	// the given name.
	ResourcePath(name string) string

	// SocketPath returns the local socket path reserved for the display
	// channel of the virtual machine with the given id.
	SocketPath(id uuid.UUID) string

	// DataPath returns the absolute path of the named data file of the
	// virtual machine with the given id.
	DataPath(id uuid.UUID, name string) string
}

// FileChecker checks for files on the host.
type FileChecker interface {
	// Exists returns if the given path exists.
	Exists(path string) bool
}

// Environment is everything besides the [config.Snapshot] the composition of
// arguments depends on.
type Environment struct {
	Host     sys.HostProbe
	Resolver Resolver
	Files    FileChecker

	// Logger receives debug records about decisions made. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

func (e *Environment) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return e.Logger
}

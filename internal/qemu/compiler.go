// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

// Compiler compiles [config.Snapshot]s into QEMU arguments for a fixed
// [Environment].
//
// A Compiler holds no state between calls and can be used concurrently.
type Compiler struct {
	env Environment
}

// NewCompiler returns a new [Compiler] for the given [Environment].
func NewCompiler(env Environment) *Compiler {
	return &Compiler{env: env}
}

// Compile returns the QEMU arguments for the given snapshot. The executable
// is not part of the arguments.
//
// The snapshot is expected to be valid, see [config.Snapshot.Validate]. It is
// never modified.
func (c *Compiler) Compile(snapshot *config.Snapshot) []string {
	g := newGenerator(snapshot, &c.env)

	var s argv.Sequence

	s.Append(
		g.bootstrapArguments(),
		g.displayArguments(),
		g.cpuArguments(),
		g.machineArguments(),
		g.architectureArguments(),
		g.soundArguments(),
	)

	if snapshot.Input.IsUSBUsed() {
		s.Append(g.usbArguments())
	}

	s.Append(
		g.drivesArguments(),
		g.networkArguments(),
		g.sharingArguments(),
		g.miscArguments(),
	)

	args := s.Strings()
	userArgs := SplitUserArguments(snapshot.QEMU.AdditionalArguments)

	g.log.Debug("Arguments compiled",
		slog.String("name", snapshot.Information.Name),
		slog.Int("generated", len(args)),
		slog.Int("user", len(userArgs)))

	return append(args, userArgs...)
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/aibor/vmargv/internal/argv"

// qemuDataResource is the bundled directory with QEMU's firmware and keymaps.
const qemuDataResource = "qemu"

// bootstrapArguments points QEMU to the bundled data directory and starts
// it paused, so the display client can connect before the guest runs.
func (g *generator) bootstrapArguments() argv.Sequence {
	var s argv.Sequence

	s.Flag("-L", g.resolver.ResourcePath(qemuDataResource))
	s.Flag("-S")

	return s
}

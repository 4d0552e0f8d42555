// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/sys"
)

// fallbackCPUModels are used for the default CPU model with TCG. QEMU does
// not accept "-cpu default" for these architectures.
var fallbackCPUModels = map[sys.Arch]string{
	sys.AArch64: "cortex-a72",
	sys.ARM:     "cortex-a15",
}

func (g *generator) cpuArguments() argv.Sequence {
	var s argv.Sequence

	system := g.snapshot.System

	switch {
	case !system.IsDefaultCPU():
		s.Flag("-cpu")
		s.Prop(system.CPU)

		for _, flag := range system.CPUFlagsAdd {
			s.Prop("+" + flag)
		}

		for _, flag := range system.CPUFlagsRemove {
			s.Prop("-" + flag)
		}

		s.End()
	case g.hypervisorUsed:
		// x86 accelerators pick the host model by default, others need it
		// explicitly.
		if !g.host.Arch.IsX86() {
			s.Flag("-cpu", "host")
		}
	default:
		if model, exists := fallbackCPUModels[system.Architecture]; exists {
			s.Flag("-cpu", model)
		}
	}

	topology := CPUTopology(system.CPUCount, system.Architecture, g.host)

	g.log.Debug("CPU topology",
		slog.Int("requested", system.CPUCount),
		slog.Int("cores", topology.Cores),
		slog.Int("threads", topology.Threads))

	s.Option("-smp",
		property("cpus", topology.Threads),
		"sockets=1",
		property("cores", topology.Cores),
		property("threads", topology.ThreadsPerCore()),
	)

	return s
}

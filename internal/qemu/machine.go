// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/sys"
)

func (g *generator) machineArguments() argv.Sequence {
	var s argv.Sequence

	s.Flag("-machine")
	s.Prop(g.target(), g.machineProperties())
	s.End()

	if g.hypervisorUsed {
		s.Flag("-accel", g.host.Accelerator)

		return s
	}

	s.Flag("-accel")
	s.Prop("tcg")

	if g.snapshot.System.ForceMulticore {
		s.Prop("thread=multi")
	}

	s.Prop(property("tb-size", g.jitCacheSize()))

	// Without the entitlement, TCG must map its code buffer twice, once
	// writable and once executable.
	if !g.host.JITEntitled {
		s.Prop("split-wx=on")
	}

	s.End()

	return s
}

// jitCacheSize returns the TCG translation block cache size in MiB.
func (g *generator) jitCacheSize() int {
	if size := g.snapshot.System.JITCacheSize; size > 0 {
		return size
	}

	return g.snapshot.System.MemorySize / 4
}

// machineProperties returns the user's machine properties completed by the
// defaults for the machine target.
func (g *generator) machineProperties() string {
	props := g.snapshot.QEMU.MachinePropertyOverride

	if g.isPCTarget() {
		props = AppendDefaultProperty(props, "vmport", "off")

		// USB input replaces PS/2 unless it is explicitly requested.
		if g.snapshot.Input.IsUSBUsed() && !g.snapshot.QEMU.PS2Controller {
			props = AppendDefaultProperty(props, "i8042", "off")
		}

		if g.hasSound(pcSpeaker) {
			props = AppendDefaultProperty(props, "pcspk-audiodev", audiodevID)
		}
	}

	// EL2 emulation, required to boot Windows on TCG.
	if g.isVirtTarget() && g.arch() == sys.AArch64 && !g.hypervisorUsed {
		props = AppendDefaultProperty(props, "virtualization", "on")
	}

	if g.target() == "mac99" {
		props = AppendDefaultProperty(props, "via", "pmu")
	}

	return props
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/aibor/vmargv/internal/argv"

func (g *generator) miscArguments() argv.Sequence {
	var s argv.Sequence

	qemu := g.snapshot.QEMU

	s.Flag("-name", g.snapshot.Information.Name)
	s.Flag("-uuid", g.snapshot.Information.ID.String())

	// A saved state can not be loaded into a disposable session.
	switch {
	case qemu.SnapshotName != "":
		s.Flag("-loadvm", qemu.SnapshotName)
	case qemu.Disposable:
		s.Flag("-snapshot")
	}

	if qemu.RTCLocalTime {
		s.Flag("-rtc", "base=localtime")
	}

	if qemu.RNGDevice {
		s.Flag("-device", "virtio-rng-pci")
	}

	if qemu.BalloonDevice {
		s.Flag("-device", "virtio-balloon-pci")
	}

	return s
}

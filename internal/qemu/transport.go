// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"

	"github.com/aibor/vmargv/internal/sys"
)

const (
	// TransportPCI is VirtIO PCI transport. Used by all architectures with a
	// PCI bus.
	TransportPCI Transport = "pci"
	// TransportCCW is VirtIO channel I/O transport of s390x.
	TransportCCW Transport = "ccw"
)

// Transport represents QEMU VirtIO transport types.
type Transport string

func (t Transport) isKnown() bool {
	return slices.Contains([]Transport{TransportPCI, TransportCCW}, t)
}

// String implements [fmt.Stringer].
func (t Transport) String() string {
	if !t.isKnown() {
		return ""
	}

	return string(t)
}

// Device returns the name of the VirtIO device with the given base name for
// the transport, like "virtio-blk-pci" for base name "virtio-blk".
func (t Transport) Device(base string) string {
	if !t.isKnown() {
		return base
	}

	return base + "-" + string(t)
}

// TransportFor returns the VirtIO transport of the given architecture.
func TransportFor(arch sys.Arch) Transport {
	if arch == sys.S390X {
		return TransportCCW
	}

	return TransportPCI
}

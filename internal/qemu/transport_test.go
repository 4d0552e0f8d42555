// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aibor/vmargv/internal/qemu"
	"github.com/aibor/vmargv/internal/sys"
)

func TestTransportFor(t *testing.T) {
	tests := []struct {
		arch     sys.Arch
		expected qemu.Transport
	}{
		{arch: sys.X86_64, expected: qemu.TransportPCI},
		{arch: sys.AArch64, expected: qemu.TransportPCI},
		{arch: sys.RISCV64, expected: qemu.TransportPCI},
		{arch: sys.S390X, expected: qemu.TransportCCW},
	}

	for _, tt := range tests {
		t.Run(string(tt.arch), func(t *testing.T) {
			assert.Equal(t, tt.expected, qemu.TransportFor(tt.arch))
		})
	}
}

func TestTransport_Device(t *testing.T) {
	tests := []struct {
		transport qemu.Transport
		expected  string
	}{
		{transport: qemu.TransportPCI, expected: "virtio-blk-pci"},
		{transport: qemu.TransportCCW, expected: "virtio-blk-ccw"},
		{transport: qemu.Transport("unknown"), expected: "virtio-blk"},
	}

	for _, tt := range tests {
		t.Run(string(tt.transport), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.transport.Device("virtio-blk"))
		})
	}
}

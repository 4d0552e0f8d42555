// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

// Hardware accelerator backends as named by QEMU's "-accel" option.
const (
	AcceleratorKVM = "kvm"
	AcceleratorHVF = "hvf"
)

// HostProbe holds the host capabilities relevant for composing QEMU
// arguments.
//
// It is a plain value, so argument composition stays a pure function of its
// inputs. Use [ProbeHost] to fill it for the running host.
type HostProbe struct {
	// Arch is the host's native architecture.
	Arch Arch `yaml:"arch"`

	// PhysicalCPUs is the number of physical cores. Zero if unknown.
	PhysicalCPUs int `yaml:"physicalCPUs"`

	// LogicalCPUs is the number of hardware threads.
	LogicalCPUs int `yaml:"logicalCPUs"`

	// PerfPhysicalCPUs is the number of physical performance cores on hosts
	// with heterogeneous cores. Zero if not applicable.
	PerfPhysicalCPUs int `yaml:"perfPhysicalCPUs"`

	// PerfLogicalCPUs is the number of hardware threads of the performance
	// cores.
	PerfLogicalCPUs int `yaml:"perfLogicalCPUs"`

	// Accelerator is the QEMU hardware accelerator backend available on the
	// host. Empty if none is available.
	Accelerator string `yaml:"accelerator"`

	// JITEntitled is true if the process may map writable and executable
	// memory at once. Without it, QEMU's TCG must split them.
	JITEntitled bool `yaml:"jitEntitled"`

	// VMNet is true if the host supports QEMU's vmnet network backends.
	VMNet bool `yaml:"vmnet"`

	// Bridges lists the bridge interfaces usable by QEMU's bridge network
	// backend.
	Bridges []string `yaml:"bridges"`
}

// HasAccelerator returns if a hardware accelerator is available.
func (h HostProbe) HasAccelerator() bool {
	return h.Accelerator != ""
}

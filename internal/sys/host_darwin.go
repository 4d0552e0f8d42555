// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ProbeHost reads the capabilities of the running host.
func ProbeHost() (HostProbe, error) {
	probe := HostProbe{
		Arch:  Native,
		VMNet: true,
	}

	var err error

	probe.PhysicalCPUs, err = sysctlInt("hw.physicalcpu")
	if err != nil {
		return probe, err
	}

	probe.LogicalCPUs, err = sysctlInt("hw.logicalcpu")
	if err != nil {
		return probe, err
	}

	// Performance levels only exist on hosts with heterogeneous cores.
	probe.PerfPhysicalCPUs, _ = sysctlInt("hw.perflevel0.physicalcpu")
	probe.PerfLogicalCPUs, _ = sysctlInt("hw.perflevel0.logicalcpu")

	if hv, _ := sysctlInt("kern.hv_support"); hv == 1 {
		probe.Accelerator = AcceleratorHVF
	}

	return probe, nil
}

func sysctlInt(name string) (int, error) {
	value, err := unix.SysctlUint32(name)
	if err != nil {
		return 0, fmt.Errorf("sysctl %s: %w", name, err)
	}

	return int(value), nil
}

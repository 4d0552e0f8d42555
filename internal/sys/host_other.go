// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux && !darwin

package sys

import "runtime"

// ProbeHost reads the capabilities of the running host.
//
// Only the number of logical CPUs is known on this platform. Physical cores
// are assumed to match.
func ProbeHost() (HostProbe, error) {
	return HostProbe{
		Arch:         Native,
		PhysicalCPUs: runtime.NumCPU(),
		LogicalCPUs:  runtime.NumCPU(),
	}, nil
}

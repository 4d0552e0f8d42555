// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"github.com/aibor/vmargv/internal/sys"
)

// Topology is the guest CPU topology. There is always a single socket.
type Topology struct {
	Cores   int
	Threads int
}

var singleCPU = Topology{Cores: 1, Threads: 1}

// newTopology returns a [Topology] with Threads being a multiple of Cores.
// Hosts reporting inconsistent counts get one thread per core.
func newTopology(cores, threads int) Topology {
	if cores <= 0 {
		return singleCPU
	}

	if threads < cores || threads%cores != 0 {
		threads = cores
	}

	return Topology{Cores: cores, Threads: threads}
}

// ThreadsPerCore returns the number of threads per core.
func (t Topology) ThreadsPerCore() int {
	return t.Threads / t.Cores
}

// CPUTopology calculates the guest CPU topology.
//
// A requested count greater than zero is used as is. Otherwise the count is
// derived from the host. Architectures that default to a single core get
// one. Guests of the host's instruction set family get all host cores.
// Foreign guests only get multiple cores if they are in the weak class,
// preferring the performance cores if the host has any.
func CPUTopology(requested int, guest sys.Arch, host sys.HostProbe) Topology {
	if requested > 0 || host.PhysicalCPUs == 0 {
		return newTopology(requested, requested)
	}

	if guest.IsSingleCore() {
		return singleCPU
	}

	if guest.SameFamily(host.Arch) {
		return newTopology(host.PhysicalCPUs, host.LogicalCPUs)
	}

	if !guest.IsWeak() {
		return singleCPU
	}

	if host.PerfPhysicalCPUs > 0 {
		return newTopology(host.PerfPhysicalCPUs, host.PerfLogicalCPUs)
	}

	return newTopology(host.PhysicalCPUs, host.LogicalCPUs)
}

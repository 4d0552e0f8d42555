// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

const (
	kvmDevice    = "/dev/kvm"
	cpuSysfsRoot = "sys/devices/system/cpu"
)

// ProbeHost reads the capabilities of the running host.
func ProbeHost() (HostProbe, error) {
	probe := HostProbe{Arch: Native}

	var cpuSet unix.CPUSet

	err := unix.SchedGetaffinity(0, &cpuSet)
	if err != nil {
		return probe, fmt.Errorf("sched getaffinity: %w", err)
	}

	probe.LogicalCPUs = cpuSet.Count()

	probe.PhysicalCPUs, err = CountPhysicalCores(os.DirFS("/"), cpuSet.IsSet)
	if err != nil {
		// Without topology information every logical CPU counts as core.
		probe.PhysicalCPUs = probe.LogicalCPUs
	}

	if KVMAvailable() {
		probe.Accelerator = AcceleratorKVM
	}

	// Linux has no W^X restrictions for anonymous mappings.
	probe.JITEntitled = true

	// Bridged networking is optional. Without netlink access there are just
	// no usable bridges.
	probe.Bridges, _ = bridgeInterfaces()

	return probe, nil
}

// KVMAvailable checks if KVM can be used by the current user.
func KVMAvailable() bool {
	f, err := os.OpenFile(kvmDevice, os.O_WRONLY, 0)
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}

// CountPhysicalCores counts the unique cores in the sysfs CPU topology found
// in the given file system. Only CPUs for which usable returns true are
// taken into account.
func CountPhysicalCores(fsys fs.FS, usable func(cpu int) bool) (int, error) {
	cpus, err := fs.Glob(fsys, path.Join(cpuSysfsRoot, "cpu[0-9]*"))
	if err != nil {
		return 0, fmt.Errorf("glob cpus: %w", err)
	}

	cores := map[string]struct{}{}

	for _, cpu := range cpus {
		num, err := strconv.Atoi(strings.TrimPrefix(path.Base(cpu), "cpu"))
		if err != nil || !usable(num) {
			continue
		}

		pkg, err := fs.ReadFile(fsys, path.Join(cpu, "topology", "physical_package_id"))
		if err != nil {
			continue
		}

		core, err := fs.ReadFile(fsys, path.Join(cpu, "topology", "core_id"))
		if err != nil {
			continue
		}

		id := strings.TrimSpace(string(pkg)) + ":" + strings.TrimSpace(string(core))
		cores[id] = struct{}{}
	}

	if len(cores) == 0 {
		return 0, ErrNoCPUTopology
	}

	return len(cores), nil
}

func bridgeInterfaces() ([]string, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	var bridges []string

	for _, link := range links {
		if _, ok := link.(*netlink.Bridge); ok {
			bridges = append(bridges, link.Attrs().Name)
		}
	}

	return bridges, nil
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/aibor/vmargv/internal/config"
	"github.com/aibor/vmargv/internal/qemu"
	"github.com/aibor/vmargv/internal/sys"
)

var testID = uuid.MustParse("5c5e4a8e-7c39-4a5e-9a52-0b7d2f6c1e01")

type fakeResolver struct{}

func (fakeResolver) ResourcePath(name string) string {
	return "/res/" + name
}

func (fakeResolver) SocketPath(id uuid.UUID) string {
	return "/run/" + id.String() + ".spice"
}

func (fakeResolver) DataPath(id uuid.UUID, name string) string {
	return "/data/" + id.String() + "/" + name
}

type fakeFiles map[string]bool

func (f fakeFiles) Exists(path string) bool {
	return f[path]
}

func x86Host() sys.HostProbe {
	return sys.HostProbe{
		Arch:         sys.X86_64,
		PhysicalCPUs: 4,
		LogicalCPUs:  8,
		Accelerator:  sys.AcceleratorKVM,
		JITEntitled:  true,
	}
}

func testSnapshot() *config.Snapshot {
	return &config.Snapshot{
		Information: config.Information{ID: testID, Name: "test"},
		System: config.System{
			Architecture: sys.X86_64,
			Target:       "q35",
			CPU:          config.DefaultCPU,
			MemorySize:   2048,
		},
		Input: config.Input{
			USBBusSupport: config.USBDisabled,
		},
		Sharing: config.Sharing{
			DirectoryShareMode: config.ShareNone,
		},
	}
}

func compile(t *testing.T, snapshot *config.Snapshot, host sys.HostProbe) []string {
	t.Helper()

	return compileWithFiles(t, snapshot, host, fakeFiles{})
}

func compileWithFiles(
	t *testing.T,
	snapshot *config.Snapshot,
	host sys.HostProbe,
	files fakeFiles,
) []string {
	t.Helper()

	compiler := qemu.NewCompiler(qemu.Environment{
		Host:     host,
		Resolver: fakeResolver{},
		Files:    files,
	})

	return compiler.Compile(snapshot)
}

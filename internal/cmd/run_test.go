// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/vmargv/internal/cmd"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func (r result) lines() []string {
	return strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
}

// resourceDir returns a resource directory with all required resources.
func resourceDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "qemu"), 0o755))

	return dir
}

func run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cfg := cmd.IO{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	code := cmd.Run(context.Background(), append([]string{"vmargv"}, args...), cfg)

	return result{code, stdout.String(), stderr.String()}
}

func TestRun_Compile(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "")

	resources := resourceDir(t)

	res := run(t,
		"--config", "testdata/config.yaml",
		"--resources", resources,
		"compile", "testdata/x86_64.yaml",
	)
	require.Equal(t, 0, res.code, res.stderr)

	lines := res.lines()

	assert.Equal(t, "qemu-system-x86_64", lines[0])
	assert.Equal(t, []string{"-L", filepath.Join(resources, "qemu"), "-S"}, lines[1:4])
	assert.Equal(t, []string{"-d", "guest_errors,unimp"}, lines[len(lines)-2:])
	assert.Contains(t, lines,
		"unix=on,addr=/run/vmargv/6f2c1e0a-3b4d-4c5e-8f9a-0b1c2d3e4f50.spice,"+
			"disable-ticketing=on,image-compression=off,playback-compression=off,"+
			"streaming-video=off,gl=off")
	assert.Contains(t, lines, "cpus=2,sockets=1,cores=2,threads=1")
	assert.Contains(t, lines, "virtio-blk-pci,drive=driveroot,bootindex=0")
	assert.Contains(t, lines, "ide-cd,bus=ide.0,drive=driveinstaller,bootindex=1")
	assert.Contains(t, lines,
		"if=none,media=cdrom,id=driveinstaller,file=/srv/iso/debian netinst.iso,readonly=on")
	assert.Contains(t, lines, "user,id=net0,hostfwd=tcp::2222-:22")
	assert.Contains(t, lines, "q35,vmport=off,i8042=off")
	assert.Contains(t, lines, "nec-usb-xhci,id=usb-controller-0")
	assert.Contains(t, lines, "virtio-rng-pci")
}

func TestRun_CompileMultiple(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "")

	res := run(t,
		"--config", "testdata/config.yaml",
		"--resources", resourceDir(t),
		"compile", "testdata/x86_64.yaml", "testdata/aarch64.yaml",
	)
	require.Equal(t, 0, res.code, res.stderr)

	lines := res.lines()
	separator := slices.Index(lines, "")
	require.NotEqual(t, -1, separator)

	assert.Equal(t, "qemu-system-x86_64", lines[0])
	assert.Equal(t, "qemu-system-aarch64", lines[separator+1])
	assert.Contains(t, lines[separator+1:], "cpus=4,sockets=1,cores=4,threads=1")
	assert.Contains(t, lines[separator+1:], "cortex-a72")
	assert.Contains(t, lines[separator+1:], "nvme,drive=driveroot,serial=root,bootindex=0")
}

func TestRun_CompileFormats(t *testing.T) {
	resources := resourceDir(t)

	t.Run("shell", func(t *testing.T) {
		t.Setenv("VMARGV_ARGS", "")
		t.Setenv("VMARGV_FORMAT", "shell")

		res := run(t,
			"--config", "testdata/config.yaml",
			"--resources", resources,
			"compile", "--args-only", "testdata/x86_64.yaml",
		)
		require.Equal(t, 0, res.code, res.stderr)

		assert.Len(t, res.lines(), 1)
		assert.True(t, strings.HasPrefix(res.stdout, "-L "), res.stdout)
		assert.Contains(t, res.stdout,
			"'if=none,media=cdrom,id=driveinstaller,file=/srv/iso/debian netinst.iso,readonly=on'")
		assert.NotContains(t, res.stdout, "qemu-system-x86_64")
	})

	t.Run("null", func(t *testing.T) {
		t.Setenv("VMARGV_ARGS", "--format null")

		res := run(t,
			"--config", "testdata/config.yaml",
			"--resources", resources,
			"compile", "testdata/aarch64.yaml",
		)
		require.Equal(t, 0, res.code, res.stderr)

		args := strings.Split(strings.TrimSuffix(res.stdout, "\x00"), "\x00")
		assert.Equal(t, "qemu-system-aarch64", args[0])
		assert.Contains(t, args, "-nographic")
	})
}

func TestRun_Errors(t *testing.T) {
	resources := resourceDir(t)

	tests := []struct {
		name           string
		args           []string
		expectedStderr string
	}{
		{
			name:           "missing snapshot",
			args:           []string{"--resources", resources, "compile"},
			expectedStderr: "requires at least 1 arg(s)",
		},
		{
			name:           "unknown flag",
			args:           []string{"compile", "--no-such-flag", "testdata/x86_64.yaml"},
			expectedStderr: "parse flags",
		},
		{
			name:           "unknown format",
			args:           []string{"--format", "json", "--resources", resources, "compile", "testdata/x86_64.yaml"},
			expectedStderr: "unknown output format",
		},
		{
			name:           "cpu count out of range",
			args:           []string{"--cpu-count", "5000", "probe"},
			expectedStderr: "value is outside of range",
		},
		{
			name:           "missing resources",
			args:           []string{"--resources", t.TempDir(), "compile", "testdata/x86_64.yaml"},
			expectedStderr: "resource missing",
		},
		{
			name:           "invalid snapshot",
			args:           []string{"--resources", resources, "compile", "testdata/duplicate.yaml"},
			expectedStderr: "duplicate drive id",
		},
		{
			name:           "snapshot not found",
			args:           []string{"--resources", resources, "compile", "testdata/nope.yaml"},
			expectedStderr: "testdata/nope.yaml",
		},
		{
			name:           "config not found",
			args:           []string{"--config", "testdata/nope.yaml", "probe"},
			expectedStderr: "read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VMARGV_ARGS", "")

			res := run(t, tt.args...)

			assert.Equal(t, -1, res.code)
			assert.Contains(t, res.stderr, tt.expectedStderr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRun_Debug(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "")

	resources := resourceDir(t)

	for _, debug := range []bool{false, true} {
		args := []string{"--config", "testdata/config.yaml", "--resources", resources}
		if debug {
			args = append(args, "--debug")
		}

		res := run(t, append(args, "compile", "testdata/x86_64.yaml")...)
		require.Equal(t, 0, res.code, res.stderr)

		if debug {
			assert.Contains(t, res.stderr, "Arguments compiled")
		} else {
			assert.Empty(t, res.stderr)
		}
	}
}

func TestRun_Probe(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "")

	res := run(t, "--config", "testdata/config.yaml", "--cpu-count", "3", "probe")
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, "arch: ")
	assert.Contains(t, res.stdout, "physicalCPUs: 3\n")
	assert.Contains(t, res.stdout, "logicalCPUs: 3\n")
}

func TestRun_Version(t *testing.T) {
	t.Setenv("VMARGV_ARGS", "")

	res := run(t, "--version")
	require.Equal(t, 0, res.code, res.stderr)

	assert.True(t, strings.HasPrefix(res.stdout, "vmargv version "), res.stdout)
}

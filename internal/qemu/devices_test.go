// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aibor/vmargv/internal/config"
	"github.com/aibor/vmargv/internal/qemu"
	"github.com/aibor/vmargv/internal/sys"
)

func filterPrefix(values []string, prefix string) []string {
	var filtered []string

	for _, value := range values {
		if strings.HasPrefix(value, prefix) {
			filtered = append(filtered, value)
		}
	}

	return filtered
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name           string
		arch           sys.Arch
		target         string
		displays       []config.Display
		expectedDevice []string
		expectedVGA    []string
		expectedGL     string
	}{
		{
			name:           "gl adapter",
			arch:           sys.X86_64,
			target:         "q35",
			displays:       []config.Display{{Hardware: "virtio-gpu-gl-pci"}},
			expectedDevice: []string{"virtio-gpu-gl-pci"},
			expectedVGA:    []string{"none"},
			expectedGL:     "gl=on",
		},
		{
			name:           "vga memory",
			arch:           sys.X86_64,
			target:         "q35",
			displays:       []config.Display{{Hardware: "qxl-vga", VGARAMMiB: 64}},
			expectedDevice: []string{"qxl-vga,vgamem_mb=64"},
			expectedVGA:    []string{"none"},
			expectedGL:     "gl=off",
		},
		{
			name:   "first display only",
			arch:   sys.X86_64,
			target: "q35",
			displays: []config.Display{
				{Hardware: "virtio-vga"},
				{Hardware: "virtio-vga-gl"},
			},
			expectedDevice: []string{"virtio-vga"},
			expectedVGA:    []string{"none"},
			expectedGL:     "gl=off",
		},
		{
			name:        "legacy video",
			arch:        sys.SPARC,
			target:      "SS-5",
			displays:    []config.Display{{Hardware: "cg3"}},
			expectedVGA: []string{"cg3"},
			expectedGL:  "gl=off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()
			snapshot.System.Architecture = tt.arch
			snapshot.System.Target = tt.target
			snapshot.Displays = tt.displays

			args := compile(t, snapshot, x86Host())

			assert.Equal(t, tt.expectedDevice, qemu.ArgumentValues(args, "-device"))
			assert.Equal(t, tt.expectedVGA, qemu.ArgumentValues(args, "-vga"))
			assert.NotContains(t, args, "-nographic")

			spice := qemu.ArgumentValues(args, "-spice")
			if assert.Len(t, spice, 1) {
				assert.True(t, strings.HasSuffix(spice[0], ","+tt.expectedGL), spice[0])
			}
		})
	}
}

func TestDisplay_Headless(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Displays = nil

	args := compile(t, snapshot, x86Host())

	assert.Contains(t, args, "-nographic")
	assert.Contains(t, qemu.ArgumentValues(args, "-chardev"),
		"spiceport,id=term0,name=com.utmapp.terminal.0")
	assert.Equal(t, []string{"chardev:term0"}, qemu.ArgumentValues(args, "-serial"))
}

func TestSound(t *testing.T) {
	tests := []struct {
		name             string
		sounds           []config.Sound
		expectedAudiodev []string
		expectedDevice   []string
	}{
		{
			name: "none",
		},
		{
			name:             "hda",
			sounds:           []config.Sound{{Hardware: "intel-hda"}},
			expectedAudiodev: []string{"spice,id=audio0"},
			expectedDevice:   []string{"intel-hda", "hda-duplex,audiodev=audio0"},
		},
		{
			name:             "plain",
			sounds:           []config.Sound{{Hardware: "AC97"}, {Hardware: "pcspk"}},
			expectedAudiodev: []string{"spice,id=audio0"},
			expectedDevice:   []string{"AC97,audiodev=audio0"},
		},
		{
			name:             "screamer",
			sounds:           []config.Sound{{Hardware: "screamer"}},
			expectedAudiodev: []string{"coreaudio,id=audio0,out.frequency=44100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()
			snapshot.Sounds = tt.sounds

			args := compile(t, snapshot, x86Host())

			assert.Equal(t, tt.expectedAudiodev, qemu.ArgumentValues(args, "-audiodev"))
			assert.Equal(t, tt.expectedDevice, qemu.ArgumentValues(args, "-device"))
		})
	}
}

func TestUSB(t *testing.T) {
	inputDevices := []string{
		"usb-tablet,bus=usb-bus.0",
		"usb-mouse,bus=usb-bus.0",
		"usb-kbd,bus=usb-bus.0",
	}

	tests := []struct {
		name     string
		arch     sys.Arch
		target   string
		input    config.Input
		expected []string
	}{
		{
			name:     "legacy",
			arch:     sys.X86_64,
			target:   "q35",
			input:    config.Input{USBBusSupport: config.USBLegacy, MaximumUSBShare: 3},
			expected: inputDevices,
		},
		{
			name:   "usb 3.0 pc",
			arch:   sys.X86_64,
			target: "q35",
			input:  config.Input{USBBusSupport: config.USB3, MaximumUSBShare: 4},
			expected: append(inputDevices,
				"nec-usb-xhci,id=usb-controller-0",
				"nec-usb-xhci,id=usb-controller-1",
				"usb-redir,chardev=usbredirchardev0,id=usbredirdev0,bus=usb-controller-0.0",
				"usb-redir,chardev=usbredirchardev1,id=usbredirdev1,bus=usb-controller-0.0",
				"usb-redir,chardev=usbredirchardev2,id=usbredirdev2,bus=usb-controller-0.0",
				"usb-redir,chardev=usbredirchardev3,id=usbredirdev3,bus=usb-controller-1.0",
			),
		},
		{
			name:   "usb 3.0 virt",
			arch:   sys.AArch64,
			target: "virt",
			input:  config.Input{USBBusSupport: config.USB3, MaximumUSBShare: 1},
			expected: append([]string{"nec-usb-xhci,id=usb-bus"}, append(inputDevices,
				"qemu-xhci,id=usb-controller-0",
				"usb-redir,chardev=usbredirchardev0,id=usbredirdev0,bus=usb-controller-0.0",
			)...),
		},
		{
			name:   "usb 2.0",
			arch:   sys.X86_64,
			target: "pc",
			input:  config.Input{USBBusSupport: config.USB2, MaximumUSBShare: 1},
			expected: append(inputDevices,
				"ich9-usb-ehci1,id=usb-controller-0",
				"ich9-usb-uhci1,masterbus=usb-controller-0.0,firstport=0,multifunction=on",
				"ich9-usb-uhci2,masterbus=usb-controller-0.0,firstport=2,multifunction=on",
				"ich9-usb-uhci3,masterbus=usb-controller-0.0,firstport=4,multifunction=on",
				"usb-redir,chardev=usbredirchardev0,id=usbredirdev0,bus=usb-controller-0.0",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()
			snapshot.System.Architecture = tt.arch
			snapshot.System.Target = tt.target
			snapshot.Input = tt.input

			args := compile(t, snapshot, x86Host())

			assert.Equal(t, tt.expected, qemu.ArgumentValues(args, "-device"))
			assert.Len(t, filterPrefix(qemu.ArgumentValues(args, "-chardev"), "spicevmc,name=usbredir"),
				len(filterPrefix(tt.expected, "usb-redir")))
			assert.Equal(t, tt.target != "virt", slices.Contains(args, "-usb"))
		})
	}
}

func TestUSB_Disabled(t *testing.T) {
	args := compile(t, testSnapshot(), x86Host())

	assert.NotContains(t, args, "-usb")
	assert.Empty(t, filterPrefix(qemu.ArgumentValues(args, "-device"), "usb-"))
}

func TestSharing(t *testing.T) {
	agent := []string{
		"virtio-serial",
		"virtserialport,chardev=vdagent,name=com.redhat.spice.0",
	}

	tests := []struct {
		name            string
		displays        []config.Display
		sharing         config.Sharing
		expectedDevice  []string
		expectedChardev []string
		expectedFSDev   []string
	}{
		{
			name:    "none",
			sharing: config.Sharing{DirectoryShareMode: config.ShareNone},
		},
		{
			name:            "clipboard",
			sharing:         config.Sharing{ClipboardSharing: true, DirectoryShareMode: config.ShareNone},
			expectedDevice:  agent,
			expectedChardev: []string{"spicevmc,id=vdagent,debug=0,name=vdagent"},
		},
		{
			name:            "dynamic resolution",
			displays:        []config.Display{{Hardware: "virtio-vga", DynamicResolution: true}},
			sharing:         config.Sharing{DirectoryShareMode: config.ShareNone},
			expectedDevice:  append([]string{"virtio-vga"}, agent...),
			expectedChardev: []string{"spicevmc,id=vdagent,debug=0,name=vdagent"},
		},
		{
			name: "dynamic resolution on second display",
			displays: []config.Display{
				{Hardware: "virtio-vga"},
				{Hardware: "qxl-vga", DynamicResolution: true},
			},
			sharing:        config.Sharing{DirectoryShareMode: config.ShareNone},
			expectedDevice: []string{"virtio-vga"},
		},
		{
			name:     "webdav",
			displays: []config.Display{{Hardware: "virtio-vga", DynamicResolution: true}},
			sharing:  config.Sharing{ClipboardSharing: true, DirectoryShareMode: config.ShareWebDAV},
			expectedDevice: append(append([]string{"virtio-vga"}, agent...),
				"virtserialport,chardev=charchannel1,id=channel1,name=org.spice-space.webdav.0",
			),
			expectedChardev: []string{
				"spicevmc,id=vdagent,debug=0,name=vdagent",
				"spiceport,name=org.spice-space.webdav.0,id=charchannel1",
			},
		},
		{
			name: "virtfs",
			sharing: config.Sharing{
				DirectoryShareMode:     config.ShareVirtFS,
				DirectoryShareURL:      "/srv/share",
				DirectoryShareReadOnly: true,
			},
			expectedDevice: []string{"virtio-9p-pci,fsdev=virtfs0,mount_tag=share"},
			expectedFSDev: []string{
				"local,id=virtfs0,path=/srv/share,security_model=mapped-xattr,readonly=on",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()
			snapshot.Displays = tt.displays
			snapshot.Sharing = tt.sharing

			args := compile(t, snapshot, x86Host())

			assert.Equal(t, tt.expectedDevice, qemu.ArgumentValues(args, "-device"))
			assert.Equal(t, tt.expectedFSDev, qemu.ArgumentValues(args, "-fsdev"))

			assert.Subset(t, qemu.ArgumentValues(args, "-chardev"), tt.expectedChardev)
		})
	}
}

func TestMisc(t *testing.T) {
	tests := []struct {
		name     string
		qemu     config.QEMU
		contains [][2]string
		absent   []string
	}{
		{
			name:     "saved state wins",
			qemu:     config.QEMU{SnapshotName: "clean", Disposable: true},
			contains: [][2]string{{"-loadvm", "clean"}},
			absent:   []string{"-snapshot"},
		},
		{
			name:   "disposable",
			qemu:   config.QEMU{Disposable: true},
			absent: []string{"-loadvm", "-rtc"},
		},
		{
			name: "devices",
			qemu: config.QEMU{RTCLocalTime: true, RNGDevice: true, BalloonDevice: true},
			contains: [][2]string{
				{"-rtc", "base=localtime"},
				{"-device", "virtio-rng-pci"},
				{"-device", "virtio-balloon-pci"},
			},
			absent: []string{"-snapshot", "-loadvm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := testSnapshot()
			snapshot.QEMU = tt.qemu

			args := compile(t, snapshot, x86Host())

			for _, pair := range tt.contains {
				assert.True(t, qemu.ContainsArgumentValue(args, pair[0], pair[1]), pair)
			}

			for _, flag := range tt.absent {
				assert.NotContains(t, args, flag)
			}

			assert.Equal(t, tt.qemu.Disposable && tt.qemu.SnapshotName == "",
				slices.Contains(args, "-snapshot"))
		})
	}
}

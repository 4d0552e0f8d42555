// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

// scsiController is the controller added for architectures without a
// built-in one.
const scsiController = "lsi53c895a"

// bootResourceFlags maps non-storage image types to the QEMU flag passing
// them.
var bootResourceFlags = map[config.ImageType]string{
	config.ImageBIOS:        "-bios",
	config.ImageLinuxKernel: "-kernel",
	config.ImageLinuxInitrd: "-initrd",
	config.ImageLinuxDTB:    "-dtb",
}

func (g *generator) drivesArguments() argv.Sequence {
	var s argv.Sequence

	for _, drive := range g.snapshot.Drives {
		if drive.ImageType.IsStorage() {
			s.Append(g.driveArguments(drive))
			continue
		}

		flag, exists := bootResourceFlags[drive.ImageType]
		if exists && drive.HasImage() {
			s.Flag(flag, drive.ImagePath)
		}
	}

	return s
}

func driveID(drive config.Drive) string {
	return "drive" + drive.ID
}

// driveArguments attaches a storage drive. The device is bound to the next
// free bus of its interface and gets the next boot index, so boot priority
// follows the order of the drives.
func (g *generator) driveArguments(drive config.Drive) argv.Sequence {
	var s argv.Sequence

	isCD := drive.ImageType == config.ImageCD
	backendInterface := config.InterfaceNone

	switch drive.Interface {
	case config.InterfaceIDE:
		s.Append(g.ideDevice(drive, isCD))
	case config.InterfaceSCSI:
		s.Append(g.scsiDevice(drive, isCD))
	case config.InterfaceVirtIO:
		s.Append(g.virtioDevice(drive))
	case config.InterfaceNVMe:
		s.Option("-device",
			"nvme",
			"drive="+driveID(drive),
			"serial="+drive.ID,
			property("bootindex", g.alloc.bootIndex()),
		)
	case config.InterfaceUSB:
		s.Append(g.usbStorageDevice(drive))
	case config.InterfaceFloppy:
		if g.hasFloppyController() {
			s.Append(g.floppyDevice(drive))
		} else {
			backendInterface = drive.Interface
		}
	default:
		backendInterface = drive.Interface
	}

	g.log.Debug("Drive allocated",
		slog.String("id", drive.ID),
		slog.String("interface", string(drive.Interface)),
		slog.Int("next_boot_index", g.alloc.peek(bootCounter)))

	s.Flag("-drive")
	s.Prop("if=" + string(backendInterface))

	if drive.Interface == config.InterfaceFloppy {
		s.Prop("format=raw")
	}

	if drive.IsRemovable() {
		s.Prop("media=cdrom")
	} else {
		s.Prop("media=disk")
	}

	s.Prop("id=" + driveID(drive))

	if drive.HasImage() {
		s.Prop("file=", drive.ImagePath)
	}

	if drive.ReadOnly || isCD {
		s.Prop("readonly=on")
	} else {
		s.Prop("discard=unmap", "detect-zeroes=unmap")
	}

	s.End()

	return s
}

func (g *generator) ideDevice(drive config.Drive, isCD bool) argv.Sequence {
	var s argv.Sequence

	model := "ide-hd"
	if isCD {
		model = "ide-cd"
	}

	s.Option("-device",
		model,
		"bus=ide."+strconv.Itoa(g.alloc.take(string(config.InterfaceIDE))),
		"drive="+driveID(drive),
		property("bootindex", g.alloc.bootIndex()),
	)

	return s
}

func (g *generator) scsiDevice(drive config.Drive, isCD bool) argv.Sequence {
	var s argv.Sequence

	bus := "scsi"

	if !g.arch().HasSingleSCSIController() {
		bus = "scsi0"

		if g.alloc.peek(string(config.InterfaceSCSI)) == 0 {
			s.Option("-device", scsiController, "id="+bus)
		}
	}

	model := "scsi-hd"
	if isCD {
		model = "scsi-cd"
	}

	s.Option("-device",
		model,
		"bus="+bus+".0",
		"channel=0",
		property("scsi-id", g.alloc.take(string(config.InterfaceSCSI))),
		"drive="+driveID(drive),
		property("bootindex", g.alloc.bootIndex()),
	)

	return s
}

func (g *generator) virtioDevice(drive config.Drive) argv.Sequence {
	var s argv.Sequence

	s.Option("-device",
		TransportFor(g.arch()).Device("virtio-blk"),
		"drive="+driveID(drive),
		property("bootindex", g.alloc.bootIndex()),
	)

	return s
}

func (g *generator) usbStorageDevice(drive config.Drive) argv.Sequence {
	var s argv.Sequence

	s.Flag("-device")
	s.Prop(
		"usb-storage",
		"drive="+driveID(drive),
		"removable="+strconv.FormatBool(drive.IsRemovable()),
		property("bootindex", g.alloc.bootIndex()),
	)

	// The XHCI controller of virt boards is the only named USB bus.
	if g.snapshot.Input.IsUSBUsed() && g.isVirtTarget() {
		s.Prop("bus=" + usbBus + ".0")
	}

	s.End()

	return s
}

// hasFloppyController returns if the machine needs an explicit ISA floppy
// controller.
func (g *generator) hasFloppyController() bool {
	return strings.HasPrefix(g.target(), "q35")
}

func (g *generator) floppyDevice(drive config.Drive) argv.Sequence {
	var s argv.Sequence

	controller := "fdc" + strconv.Itoa(g.alloc.take(string(config.InterfaceFloppy)))

	s.Option("-device",
		"isa-fdc",
		"id="+controller,
		property("bootindexA", g.alloc.bootIndex()),
	)
	s.Option("-device",
		"floppy",
		"unit=0",
		"bus="+controller+".0",
		"drive="+driveID(drive),
	)

	return s
}

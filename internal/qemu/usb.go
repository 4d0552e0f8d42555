// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

const (
	usbBus = "usb-bus"

	// devicesPerUSBController is the number of redirected devices sharing a
	// controller.
	devicesPerUSBController = 3
)

// usbControllerCount returns the number of controllers needed for the
// given number of redirected devices.
func usbControllerCount(maxDevices int) int {
	if maxDevices <= 0 {
		return 0
	}

	return (maxDevices + devicesPerUSBController - 1) / devicesPerUSBController
}

func (g *generator) usbArguments() argv.Sequence {
	var s argv.Sequence

	if g.isVirtTarget() {
		s.Flag("-device", "nec-usb-xhci,id="+usbBus)
	} else {
		s.Flag("-usb")
	}

	for _, device := range []string{"usb-tablet", "usb-mouse", "usb-kbd"} {
		s.Option("-device", device, "bus="+usbBus+".0")
	}

	input := g.snapshot.Input
	if input.USBBusSupport == config.USBLegacy {
		return s
	}

	controllers := usbControllerCount(input.MaximumUSBShare)

	for idx := range controllers {
		s.Append(g.usbControllerArguments(idx))
	}

	for idx := range input.MaximumUSBShare {
		chardev := fmt.Sprintf("usbredirchardev%d", idx)

		s.Option("-chardev", "spicevmc", "name=usbredir", "id="+chardev)
		s.Option("-device",
			"usb-redir",
			"chardev="+chardev,
			fmt.Sprintf("id=usbredirdev%d", idx),
			fmt.Sprintf("bus=usb-controller-%d.0", idx/devicesPerUSBController),
		)
	}

	return s
}

func (g *generator) usbControllerArguments(idx int) argv.Sequence {
	var s argv.Sequence

	id := fmt.Sprintf("usb-controller-%d", idx)

	if g.snapshot.Input.USBBusSupport == config.USB3 {
		model := "qemu-xhci"
		if g.isPCTarget() {
			model = "nec-usb-xhci"
		}

		s.Option("-device", model, "id="+id)

		return s
	}

	// USB 2.0 is an EHCI controller with UHCI companions for USB 1.1
	// devices.
	s.Option("-device", "ich9-usb-ehci1", "id="+id)

	for port, companion := range []string{"ich9-usb-uhci1", "ich9-usb-uhci2", "ich9-usb-uhci3"} {
		s.Option("-device",
			companion,
			"masterbus="+id+".0",
			property("firstport", port*2),
			"multifunction=on",
		)
	}

	return s
}

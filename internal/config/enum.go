// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"slices"
)

// DriveInterface is the bus a drive is attached to.
type DriveInterface string

// Supported drive interfaces.
const (
	InterfaceIDE    DriveInterface = "ide"
	InterfaceSCSI   DriveInterface = "scsi"
	InterfaceVirtIO DriveInterface = "virtio"
	InterfaceNVMe   DriveInterface = "nvme"
	InterfaceUSB    DriveInterface = "usb"
	InterfaceFloppy DriveInterface = "floppy"
	InterfacePFlash DriveInterface = "pflash"
	InterfaceNone   DriveInterface = "none"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *DriveInterface) UnmarshalText(text []byte) error {
	return unmarshalEnum(i, text, []DriveInterface{
		InterfaceIDE, InterfaceSCSI, InterfaceVirtIO, InterfaceNVMe,
		InterfaceUSB, InterfaceFloppy, InterfacePFlash, InterfaceNone,
	})
}

// ImageType is the role of a drive's image.
type ImageType string

// Supported image types.
const (
	ImageDisk        ImageType = "disk"
	ImageCD          ImageType = "cd"
	ImageBIOS        ImageType = "bios"
	ImageLinuxKernel ImageType = "linux-kernel"
	ImageLinuxInitrd ImageType = "linux-initrd"
	ImageLinuxDTB    ImageType = "linux-dtb"
)

// IsStorage returns if images of the type are attached as block devices.
// All other types are boot resources passed to QEMU directly.
func (t ImageType) IsStorage() bool {
	return t == ImageDisk || t == ImageCD
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *ImageType) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, text, []ImageType{
		ImageDisk, ImageCD, ImageBIOS, ImageLinuxKernel, ImageLinuxInitrd,
		ImageLinuxDTB,
	})
}

// NetworkMode is the host integration mode of a network adapter.
type NetworkMode string

// Supported network modes.
const (
	NetworkEmulated NetworkMode = "emulated"
	NetworkShared   NetworkMode = "shared"
	NetworkBridged  NetworkMode = "bridged"
	NetworkHost     NetworkMode = "host"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *NetworkMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(m, text, []NetworkMode{
		NetworkEmulated, NetworkShared, NetworkBridged, NetworkHost,
	})
}

// Protocol is the transport protocol of a port forward.
type Protocol string

// Supported port forward protocols.
const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Protocol) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, text, []Protocol{ProtocolTCP, ProtocolUDP})
}

// USBBus is the level of USB support of the guest.
type USBBus string

// Supported USB bus levels.
const (
	USBDisabled USBBus = "disabled"
	USBLegacy   USBBus = "legacy"
	USB2        USBBus = "2.0"
	USB3        USBBus = "3.0"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *USBBus) UnmarshalText(text []byte) error {
	return unmarshalEnum(u, text, []USBBus{USBDisabled, USBLegacy, USB2, USB3})
}

// ShareMode is the directory sharing mechanism.
type ShareMode string

// Supported directory share modes.
const (
	ShareNone   ShareMode = "none"
	ShareWebDAV ShareMode = "webdav"
	ShareVirtFS ShareMode = "virtfs"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *ShareMode) UnmarshalText(text []byte) error {
	return unmarshalEnum(m, text, []ShareMode{ShareNone, ShareWebDAV, ShareVirtFS})
}

func unmarshalEnum[T ~string](target *T, text []byte, known []T) error {
	value := T(text)
	if !slices.Contains(known, value) {
		return fmt.Errorf("%w: %q", ErrUnknownValue, text)
	}

	*target = value

	return nil
}

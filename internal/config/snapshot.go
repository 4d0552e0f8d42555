// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"github.com/google/uuid"

	"github.com/aibor/vmargv/internal/sys"
)

// Snapshot is the virtual machine configuration read by a single argument
// composition. It must not be modified while in use.
type Snapshot struct {
	Information Information `yaml:"information"`
	System      System      `yaml:"system"`
	Displays    []Display   `yaml:"displays"`
	Sounds      []Sound     `yaml:"sounds"`
	Drives      []Drive     `yaml:"drives"`
	Networks    []Network   `yaml:"networks"`
	Input       Input       `yaml:"input"`
	Sharing     Sharing     `yaml:"sharing"`
	QEMU        QEMU        `yaml:"qemu"`
}

// Information identifies the virtual machine.
type Information struct {
	ID   uuid.UUID `yaml:"id"`
	Name string    `yaml:"name"`
}

// System describes the emulated machine.
type System struct {
	Architecture sys.Arch `yaml:"architecture"`

	// Target is the QEMU machine type, like "q35" or "virt".
	Target string `yaml:"target"`

	// CPU is the QEMU CPU model. Empty or [DefaultCPU] let QEMU choose.
	CPU            string   `yaml:"cpu"`
	CPUFlagsAdd    []string `yaml:"cpuFlagsAdd"`
	CPUFlagsRemove []string `yaml:"cpuFlagsRemove"`

	// CPUCount is the number of guest CPUs. Zero picks a count based on the
	// host.
	CPUCount int `yaml:"cpuCount"`

	// MemorySize is the guest memory in MiB.
	MemorySize int `yaml:"memorySize"`

	// ForceMulticore enables multi-threaded TCG even if QEMU considers the
	// guest unsafe for it.
	ForceMulticore bool `yaml:"forceMulticore"`

	// JITCacheSize is the TCG translation block cache in MiB. Zero uses a
	// quarter of the guest memory.
	JITCacheSize int `yaml:"jitCacheSize"`

	// Hypervisor enables hardware acceleration if the host supports it.
	Hypervisor bool `yaml:"hypervisor"`
}

// DefaultCPU is the canonical CPU model name letting QEMU pick the model.
const DefaultCPU = "default"

// IsDefaultCPU returns if no specific CPU model is requested.
func (s System) IsDefaultCPU() bool {
	return s.CPU == "" || s.CPU == DefaultCPU
}

// Display is a video adapter.
type Display struct {
	Hardware          string `yaml:"hardware"`
	DynamicResolution bool   `yaml:"dynamicResolution"`

	// VGARAMMiB is the video memory size. Zero uses QEMU's default.
	VGARAMMiB int `yaml:"vgaRamMib"`
}

// Sound is an audio device.
type Sound struct {
	Hardware string `yaml:"hardware"`
}

// Drive is a block device or boot resource.
type Drive struct {
	// ID is unique within a [Snapshot]. It is used to name the QEMU drive.
	ID        string         `yaml:"id"`
	Interface DriveInterface `yaml:"interface"`
	ImageType ImageType      `yaml:"imageType"`

	// External drives have their media inserted at runtime.
	External bool `yaml:"external"`

	// ImagePath is the resolved path of the image. Empty for ejected or
	// external drives.
	ImagePath string `yaml:"imagePath"`

	ReadOnly bool `yaml:"readOnly"`
}

// IsRemovable returns if the drive is attached as removable media.
func (d Drive) IsRemovable() bool {
	return d.ImageType == ImageCD || d.External
}

// HasImage returns if an image file is attached at start.
func (d Drive) HasImage() bool {
	return !d.External && d.ImagePath != ""
}

// Network is a network adapter.
type Network struct {
	Hardware   string      `yaml:"hardware"`
	MACAddress string      `yaml:"macAddress"`
	Mode       NetworkMode `yaml:"mode"`

	// BridgeInterface is the host interface used in [NetworkBridged] mode.
	BridgeInterface string `yaml:"bridgeInterface"`

	IsolateFromHost bool `yaml:"isolateFromHost"`

	GuestAddress         string `yaml:"guestAddress"`
	HostAddress          string `yaml:"hostAddress"`
	GuestAddressIPv6     string `yaml:"guestAddressIPv6"`
	HostAddressIPv6      string `yaml:"hostAddressIPv6"`
	DHCPStartAddress     string `yaml:"dhcpStartAddress"`
	DHCPDomain           string `yaml:"dhcpDomain"`
	DNSSearchDomain      string `yaml:"dnsSearchDomain"`
	DNSServerAddress     string `yaml:"dnsServerAddress"`
	DNSServerAddressIPv6 string `yaml:"dnsServerAddressIPv6"`

	PortForwards []PortForward `yaml:"portForwards"`
}

// PortForward forwards a host port into the guest.
type PortForward struct {
	Protocol     Protocol `yaml:"protocol"`
	HostAddress  string   `yaml:"hostAddress"`
	HostPort     uint16   `yaml:"hostPort"`
	GuestAddress string   `yaml:"guestAddress"`
	GuestPort    uint16   `yaml:"guestPort"`
}

// Input configures the guest's USB bus.
type Input struct {
	USBBusSupport USBBus `yaml:"usbBusSupport"`

	// MaximumUSBShare is the number of host USB devices that can be
	// redirected into the guest at the same time.
	MaximumUSBShare int `yaml:"maximumUsbShare"`
}

// IsUSBUsed returns if the guest has a USB bus.
func (i Input) IsUSBUsed() bool {
	return i.USBBusSupport != USBDisabled && i.USBBusSupport != ""
}

// Sharing configures host integration features.
type Sharing struct {
	ClipboardSharing       bool      `yaml:"clipboardSharing"`
	DirectoryShareMode     ShareMode `yaml:"directoryShareMode"`
	DirectoryShareURL      string    `yaml:"directoryShareUrl"`
	DirectoryShareReadOnly bool      `yaml:"directoryShareReadOnly"`
}

// QEMU holds QEMU specific features and user supplied arguments.
type QEMU struct {
	UEFIBoot      bool `yaml:"uefiBoot"`
	RTCLocalTime  bool `yaml:"rtcLocalTime"`
	RNGDevice     bool `yaml:"rngDevice"`
	BalloonDevice bool `yaml:"balloonDevice"`
	PS2Controller bool `yaml:"ps2Controller"`

	// Disposable sessions discard all writes to drives on exit.
	Disposable bool `yaml:"disposable"`

	// SnapshotName is the VM state to load on start. It takes precedence
	// over Disposable.
	SnapshotName string `yaml:"snapshotName"`

	// MachinePropertyOverride is passed with the machine type. Defaults are
	// only added for keys not present in it.
	MachinePropertyOverride string `yaml:"machinePropertyOverride"`

	// AdditionalArguments are appended after all generated arguments.
	AdditionalArguments []string `yaml:"additionalArguments"`
}

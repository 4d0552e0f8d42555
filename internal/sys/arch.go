// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"runtime"
	"slices"
)

// Arch is a QEMU target architecture as used in the "qemu-system-*" binary
// names.
type Arch string

// Supported guest architectures.
const (
	Alpha        Arch = "alpha"
	ARM          Arch = "arm"
	AArch64      Arch = "aarch64"
	AVR          Arch = "avr"
	HPPA         Arch = "hppa"
	I386         Arch = "i386"
	LoongArch64  Arch = "loongarch64"
	M68K         Arch = "m68k"
	MicroBlaze   Arch = "microblaze"
	MicroBlazeEL Arch = "microblazeel"
	MIPS         Arch = "mips"
	MIPSEL       Arch = "mipsel"
	MIPS64       Arch = "mips64"
	MIPS64EL     Arch = "mips64el"
	OR1K         Arch = "or1k"
	PPC          Arch = "ppc"
	PPC64        Arch = "ppc64"
	RISCV32      Arch = "riscv32"
	RISCV64      Arch = "riscv64"
	RX           Arch = "rx"
	S390X        Arch = "s390x"
	SH4          Arch = "sh4"
	SH4EB        Arch = "sh4eb"
	SPARC        Arch = "sparc"
	SPARC64      Arch = "sparc64"
	TriCore      Arch = "tricore"
	X86_64       Arch = "x86_64" //nolint:revive,stylecheck
	Xtensa       Arch = "xtensa"
	XtensaEB     Arch = "xtensaeb"
)

var knownArchs = []Arch{
	Alpha, ARM, AArch64, AVR, HPPA, I386, LoongArch64, M68K, MicroBlaze,
	MicroBlazeEL, MIPS, MIPSEL, MIPS64, MIPS64EL, OR1K, PPC, PPC64, RISCV32,
	RISCV64, RX, S390X, SH4, SH4EB, SPARC, SPARC64, TriCore, X86_64, Xtensa,
	XtensaEB,
}

// Architecture classes. Membership is explicit so every class can be checked
// against [knownArchs] in tests.
var (
	// weakArchs are emulated fast enough on a foreign host that emulating
	// them benefits from multiple host cores.
	weakArchs = []Arch{
		Alpha, ARM, AArch64, AVR, MIPS, MIPS64, MIPSEL, MIPS64EL, PPC, PPC64,
		RISCV32, RISCV64, Xtensa, XtensaEB,
	}

	// singleCoreArchs default to a single CPU and only support the legacy
	// "-vga" video adapter and "-net nic" adapters.
	singleCoreArchs = []Arch{SPARC}

	// singleSCSIControllerArchs come with a built-in SCSI controller that
	// must be used instead of adding one.
	singleSCSIControllerArchs = []Arch{SPARC, SPARC64}
)

// Native is the architecture of the host.
var Native = ArchFromGOARCH(runtime.GOARCH)

// ArchFromGOARCH translates Go's architecture names into [Arch]. Unknown
// names are returned as is.
func ArchFromGOARCH(goarch string) Arch {
	switch goarch {
	case "amd64":
		return X86_64
	case "386":
		return I386
	case "arm64":
		return AArch64
	case "arm":
		return ARM
	case "loong64":
		return LoongArch64
	case "mipsle":
		return MIPSEL
	case "mips64le":
		return MIPS64EL
	case "ppc64", "ppc64le":
		return PPC64
	default:
		return Arch(goarch)
	}
}

// String implements [fmt.Stringer].
func (a Arch) String() string {
	return string(a)
}

// Executable returns the name of the QEMU system emulator binary.
func (a Arch) Executable() string {
	return "qemu-system-" + string(a)
}

// IsKnown returns if the [Arch] is supported.
func (a Arch) IsKnown() bool {
	return slices.Contains(knownArchs, a)
}

// IsX86 returns if the [Arch] belongs to the x86 family.
func (a Arch) IsX86() bool {
	return a == X86_64 || a == I386
}

// IsARM returns if the [Arch] belongs to the arm family.
func (a Arch) IsARM() bool {
	return a == AArch64 || a == ARM
}

// IsWeak returns if the [Arch] is in the weak class.
func (a Arch) IsWeak() bool {
	return slices.Contains(weakArchs, a)
}

// IsSingleCore returns if the [Arch] defaults to a single CPU core.
func (a Arch) IsSingleCore() bool {
	return slices.Contains(singleCoreArchs, a)
}

// HasSingleSCSIController returns if the [Arch] has exactly one built-in
// SCSI controller.
func (a Arch) HasSingleSCSIController() bool {
	return slices.Contains(singleSCSIControllerArchs, a)
}

// SameFamily returns if the [Arch] shares the instruction set family with
// the other [Arch].
func (a Arch) SameFamily(other Arch) bool {
	switch {
	case a.IsX86():
		return other.IsX86()
	case a.IsARM():
		return other.IsARM()
	default:
		return a == other
	}
}

// IsNative returns if the [Arch] matches the given host [Arch]. Hardware
// acceleration is only possible for native guests.
func (a Arch) IsNative(host Arch) bool {
	return a == host
}

// Set implements [flag.Value].
func (a *Arch) Set(s string) error {
	arch := Arch(s)
	if !arch.IsKnown() {
		return ErrArchNotSupported
	}

	*a = arch

	return nil
}

// Type implements [pflag.Value].
func (*Arch) Type() string {
	return "arch"
}

// MarshalText implements [encoding.TextMarshaler].
func (a Arch) MarshalText() ([]byte, error) {
	if !a.IsKnown() {
		return nil, ErrArchNotSupported
	}

	return []byte(a), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Arch) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

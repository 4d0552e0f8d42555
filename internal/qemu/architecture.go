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

// efiVarsFile is the name of the per virtual machine UEFI variable store.
const efiVarsFile = "efi_vars.fd"

func (g *generator) architectureArguments() argv.Sequence {
	var s argv.Sequence

	if g.arch().IsX86() {
		// S3 sleep is broken with most guests. PIIX4_PM applies to pc and
		// ICH9-LPC to q35 machines.
		s.Flag("-global", "PIIX4_PM.disable_s3=1")
		s.Flag("-global", "ICH9-LPC.disable_s3=1")
	}

	if g.snapshot.QEMU.UEFIBoot && !g.hasCustomBIOS() {
		s.Append(g.firmwareArguments())
	}

	s.Flag("-m", strconv.Itoa(g.snapshot.System.MemorySize))

	return s
}

// firmwareArguments attaches the bundled UEFI firmware as pflash drives. The
// code volume is read-only, the variable store belongs to the virtual
// machine. Nothing is attached if the firmware is not bundled.
func (g *generator) firmwareArguments() argv.Sequence {
	var s argv.Sequence

	code := g.resolver.ResourcePath(g.firmwareCodeName())
	if !g.files.Exists(code) {
		g.log.Debug("UEFI firmware not found", slog.String("path", code))

		return s
	}

	s.Option("-drive",
		"if=pflash",
		"format=raw",
		"unit=0",
		"file.filename=", code,
		"file.locking=off",
		"readonly=on",
	)

	s.Option("-drive",
		"if=pflash",
		"unit=1",
		"file=", g.resolver.DataPath(g.snapshot.Information.ID, efiVarsFile),
	)

	return s
}

func (g *generator) firmwareCodeName() string {
	if strings.Contains(g.target(), "secboot") {
		return "edk2-" + string(g.arch()) + "-secure-code.fd"
	}

	return "edk2-" + string(g.arch()) + "-code.fd"
}

// hasCustomBIOS returns if the user provides a firmware image.
func (g *generator) hasCustomBIOS() bool {
	for _, drive := range g.snapshot.Drives {
		if drive.ImageType == config.ImageBIOS && drive.HasImage() {
			return true
		}
	}

	return false
}

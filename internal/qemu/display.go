// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strings"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

const (
	monitorChannel  = "org.qemu.monitor.qmp"
	terminalChardev = "term0"
	terminalChannel = "com.utmapp.terminal.0"
)

// display returns the display in use. Only the first configured one is
// supported.
func (g *generator) display() (config.Display, bool) {
	if len(g.snapshot.Displays) == 0 {
		return config.Display{}, false
	}

	return g.snapshot.Displays[0], true
}

// isGLOn returns if the display adapter is a GL accelerated variant.
func (g *generator) isGLOn() bool {
	display, ok := g.display()
	if !ok {
		return false
	}

	return strings.HasSuffix(display.Hardware, "-gl") ||
		strings.Contains(display.Hardware, "-gl-")
}

func (g *generator) displayArguments() argv.Sequence {
	var s argv.Sequence

	s.Flag("-spice")
	s.Prop(
		"unix=on",
		"addr=", g.resolver.SocketPath(g.snapshot.Information.ID),
		"disable-ticketing=on",
		"image-compression=off",
		"playback-compression=off",
		"streaming-video=off",
		"gl="+onOff(g.isGLOn()),
	)
	s.End()

	// QMP is served on a SPICE port channel, so the display client owns the
	// only connection to the emulator.
	s.Option("-chardev", "spiceport", "id="+monitorChannel, "name="+monitorChannel+".0")
	s.Option("-mon", "chardev="+monitorChannel, "mode=control")

	legacyVideo := g.arch().IsSingleCore()

	// Default devices would duplicate drives and video adapters. Legacy
	// boards need their built-in video adapter.
	if !legacyVideo {
		s.Flag("-nodefaults", "-vga", "none")
	}

	display, ok := g.display()

	switch {
	case !ok:
		s.Flag("-nographic")
		s.Option("-chardev", "spiceport", "id="+terminalChardev, "name="+terminalChannel)
		s.Flag("-serial", "chardev:"+terminalChardev)
	case legacyVideo:
		s.Flag("-vga", display.Hardware)
	default:
		s.Flag("-device")
		s.Prop(display.Hardware)
		s.Prop(vgaMemory(display))
		s.End()
	}

	return s
}

func vgaMemory(display config.Display) string {
	if display.VGARAMMiB <= 0 {
		return ""
	}

	return property("vgamem_mb", display.VGARAMMiB)
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"
	"strings"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

const (
	audiodevID = "audio0"

	// screamer is the built-in mac99 sound chip. It only works with a fixed
	// 44.1 kHz output rate.
	screamer = "screamer"

	// pcSpeaker is a machine built-in, bound by machine property.
	pcSpeaker = "pcspk"
)

// hasSound returns if a sound device of the given hardware is configured.
func (g *generator) hasSound(hardware string) bool {
	return slices.ContainsFunc(g.snapshot.Sounds, func(s config.Sound) bool {
		return s.Hardware == hardware
	})
}

func (g *generator) soundArguments() argv.Sequence {
	var s argv.Sequence

	if len(g.snapshot.Sounds) == 0 {
		return s
	}

	if g.hasSound(screamer) {
		s.Option("-audiodev", "coreaudio", "id="+audiodevID, "out.frequency=44100")
	} else {
		s.Option("-audiodev", "spice", "id="+audiodevID)
	}

	for _, sound := range g.snapshot.Sounds {
		switch {
		case sound.Hardware == screamer, sound.Hardware == pcSpeaker:
			// Built into the machine, no device to add.
		case strings.Contains(sound.Hardware, "hda"):
			s.Option("-device", sound.Hardware)
			s.Option("-device", "hda-duplex", "audiodev="+audiodevID)
		default:
			s.Option("-device", sound.Hardware, "audiodev="+audiodevID)
		}
	}

	return s
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

const webDAVChannel = "org.spice-space.webdav.0"

// needsSpiceAgent returns if any feature requiring the SPICE guest agent is
// enabled. VirtFS shares do not use the agent.
func (g *generator) needsSpiceAgent() bool {
	sharing := g.snapshot.Sharing

	if sharing.ClipboardSharing || sharing.DirectoryShareMode == config.ShareWebDAV {
		return true
	}

	display, ok := g.display()

	return ok && display.DynamicResolution
}

func (g *generator) sharingArguments() argv.Sequence {
	var s argv.Sequence

	sharing := g.snapshot.Sharing

	if g.needsSpiceAgent() {
		s.Flag("-device", "virtio-serial")
		s.Flag("-device", "virtserialport,chardev=vdagent,name=com.redhat.spice.0")
		s.Flag("-chardev", "spicevmc,id=vdagent,debug=0,name=vdagent")

		if sharing.DirectoryShareMode == config.ShareWebDAV {
			s.Option("-device", "virtserialport", "chardev=charchannel1", "id=channel1", "name="+webDAVChannel)
			s.Option("-chardev", "spiceport", "name="+webDAVChannel, "id=charchannel1")
		}
	}

	if sharing.DirectoryShareMode == config.ShareVirtFS && sharing.DirectoryShareURL != "" {
		s.Flag("-fsdev")
		s.Prop("local", "id=virtfs0", "path=", sharing.DirectoryShareURL, "security_model=mapped-xattr")

		if sharing.DirectoryShareReadOnly {
			s.Prop("readonly=on")
		}

		s.End()
		s.Flag("-device", "virtio-9p-pci,fsdev=virtfs0,mount_tag=share")
	}

	return s
}

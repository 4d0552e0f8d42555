// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"log/slog"
	"strings"

	"github.com/aibor/vmargv/internal/config"
	"github.com/aibor/vmargv/internal/sys"
)

// generator holds the state of a single composition. Each category of
// arguments is produced by one of its methods.
type generator struct {
	snapshot *config.Snapshot
	host     sys.HostProbe
	resolver Resolver
	files    FileChecker
	log      *slog.Logger

	alloc          *busAllocator
	hypervisorUsed bool
}

func newGenerator(snapshot *config.Snapshot, env *Environment) *generator {
	g := &generator{
		snapshot: snapshot,
		host:     env.Host,
		resolver: env.Resolver,
		files:    env.Files,
		log:      env.logger(),
		alloc:    newBusAllocator(),
	}

	g.hypervisorUsed = snapshot.System.Hypervisor &&
		env.Host.HasAccelerator() &&
		canAccelerate(snapshot.System.Architecture, env.Host.Arch)

	g.log.Debug("Hardware acceleration",
		slog.Bool("requested", snapshot.System.Hypervisor),
		slog.String("accelerator", env.Host.Accelerator),
		slog.Bool("used", g.hypervisorUsed))

	return g
}

// canAccelerate returns if guests of the given architecture can run with
// hardware acceleration on the host.
func canAccelerate(guest, host sys.Arch) bool {
	return guest.IsNative(host) || (guest == sys.I386 && host == sys.X86_64)
}

func (g *generator) arch() sys.Arch {
	return g.snapshot.System.Architecture
}

func (g *generator) target() string {
	return g.snapshot.System.Target
}

// isPCTarget returns if the machine target is one of the x86 PC families.
func (g *generator) isPCTarget() bool {
	return strings.HasPrefix(g.target(), "pc") ||
		strings.HasPrefix(g.target(), "q35")
}

// isVirtTarget returns if the machine target is a generic "virt" board.
func (g *generator) isVirtTarget() bool {
	return strings.HasPrefix(g.target(), "virt")
}

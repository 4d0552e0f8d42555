// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aibor/vmargv/internal/argv"
	"github.com/aibor/vmargv/internal/config"
)

// netdevKind is the class of a QEMU network backend.
type netdevKind int

const (
	// netdevUser is QEMU's built-in NAT.
	netdevUser netdevKind = iota
	// netdevVMNet are the vmnet backends integrated with the host.
	netdevVMNet
	// netdevBridge attaches to a host bridge through the bridge helper.
	netdevBridge
)

// defaultVMNetBridge is the interface bridged if none is configured.
const defaultVMNetBridge = "en0"

// netdev is a selected network backend.
type netdev struct {
	kind  netdevKind
	props []string
}

func (g *generator) networkArguments() argv.Sequence {
	var s argv.Sequence

	if len(g.snapshot.Networks) == 0 {
		s.Flag("-nic", "none")

		return s
	}

	for idx, network := range g.snapshot.Networks {
		id := fmt.Sprintf("net%d", idx)

		if g.arch().IsSingleCore() {
			s.Option("-net", "nic", "model=lance", "macaddr="+network.MACAddress, "netdev="+id)
		} else {
			s.Option("-device", network.Hardware, "mac="+network.MACAddress, "netdev="+id)
		}

		s.Append(g.netdevArguments(network, id))
	}

	return s
}

// selectNetdev picks the backend for the network. Host integrated modes fall
// back to NAT on hosts that do not support them.
func (g *generator) selectNetdev(network config.Network) netdev {
	bridge := network.BridgeInterface

	switch {
	case g.host.VMNet && network.Mode == config.NetworkShared:
		return netdev{netdevVMNet, []string{"vmnet-shared"}}
	case g.host.VMNet && network.Mode == config.NetworkHost:
		return netdev{netdevVMNet, []string{"vmnet-host"}}
	case g.host.VMNet && network.Mode == config.NetworkBridged:
		if bridge == "" {
			bridge = defaultVMNetBridge
		}

		return netdev{netdevVMNet, []string{"vmnet-bridged", "ifname=" + bridge}}
	case network.Mode == config.NetworkBridged && slices.Contains(g.host.Bridges, bridge):
		return netdev{netdevBridge, []string{"bridge", "br=" + bridge}}
	}

	if network.Mode != config.NetworkEmulated {
		g.log.Debug("Network mode not supported by host, using NAT",
			slog.String("mode", string(network.Mode)))
	}

	return netdev{netdevUser, []string{"user"}}
}

func (g *generator) netdevArguments(network config.Network, id string) argv.Sequence {
	var s argv.Sequence

	backend := g.selectNetdev(network)

	s.Flag("-netdev")
	s.Prop(backend.props[0], "id="+id)
	s.Prop(backend.props[1:]...)

	if network.IsolateFromHost {
		switch backend.kind {
		case netdevVMNet:
			s.Prop("isolated=on")
		case netdevUser:
			s.Prop("restrict=on")
		case netdevBridge:
			// Isolation is up to the bridge's host configuration.
		}
	}

	if backend.kind == netdevUser {
		s.Prop(natProperties(network)...)

		for _, forward := range network.PortForwards {
			s.Prop(hostForward(forward))
		}
	}

	s.End()

	return s
}

// natProperties returns the address options of the user mode network. Only
// options with a value are returned.
func natProperties(network config.Network) []string {
	options := []struct {
		key   string
		value string
	}{
		{"net", network.GuestAddress},
		{"host", network.HostAddress},
		{"ipv6-net", network.GuestAddressIPv6},
		{"ipv6-host", network.HostAddressIPv6},
		{"dhcpstart", network.DHCPStartAddress},
		{"dns", network.DNSServerAddress},
		{"ipv6-dns", network.DNSServerAddressIPv6},
		{"dnssearch", network.DNSSearchDomain},
		{"domainname", network.DHCPDomain},
	}

	var props []string

	for _, option := range options {
		if option.value != "" {
			props = append(props, option.key+"="+option.value)
		}
	}

	return props
}

func hostForward(forward config.PortForward) string {
	return fmt.Sprintf("hostfwd=%s:%s:%d-%s:%d",
		strings.ToLower(string(forward.Protocol)),
		forward.HostAddress,
		forward.HostPort,
		forward.GuestAddress,
		forward.GuestPort,
	)
}

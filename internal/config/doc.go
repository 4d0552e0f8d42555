// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config provides the virtual machine configuration [Snapshot] that
// QEMU arguments are composed from, and loading it from YAML files.
//
// A [Snapshot] is treated as immutable once loaded. The order of drives,
// networks and sound devices is their priority order.
package config

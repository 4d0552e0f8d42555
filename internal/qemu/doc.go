// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu composes QEMU system emulator argument vectors from a
// [config.Snapshot].
//
// Composition is a pure function of the snapshot and the [Environment]: host
// capabilities are passed in as [sys.HostProbe] value and resources are
// resolved through the [Resolver] and [FileChecker] interfaces. Identical
// inputs yield identical arguments.
//
// The order of the generated arguments is significant. QEMU binds devices to
// buses in the order they appear, so drives, networks and sound devices are
// emitted in the order of the snapshot's lists. User supplied arguments are
// appended last.
package qemu

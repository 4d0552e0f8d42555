// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package resource locates the files QEMU is started with: the bundled data
// directory with firmware images, the per virtual machine data files and the
// local sockets of the display channels.
package resource

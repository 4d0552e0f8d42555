// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package argv provides the token model used to compose QEMU argument
// vectors.
//
// A [Sequence] is built from [Complete] tokens, which end up as separate
// arguments, and [Property] tokens, which are merged into a single argument
// with their neighbours. Flattening a [Sequence] with [Sequence.Strings]
// yields the argument strings ready for use with [exec.Command].
package argv

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package resource

import "errors"

// ErrResourceMissing is returned if a required bundled resource does not
// exist.
var ErrResourceMissing = errors.New("resource missing")

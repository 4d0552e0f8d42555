// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate checks the invariants argument composition relies on.
func (s *Snapshot) Validate() error {
	if s.Information.ID == uuid.Nil {
		return &ValidationError{"information.id", ErrMissingField}
	}

	if !s.System.Architecture.IsKnown() {
		return &ValidationError{
			"system.architecture",
			fmt.Errorf("%w: %q", ErrUnknownValue, s.System.Architecture),
		}
	}

	if s.System.Target == "" {
		return &ValidationError{"system.target", ErrMissingField}
	}

	if s.System.MemorySize <= 0 {
		return &ValidationError{"system.memorySize", ErrMissingField}
	}

	seen := make(map[string]struct{}, len(s.Drives))

	for idx, drive := range s.Drives {
		field := fmt.Sprintf("drives[%d].id", idx)

		if drive.ID == "" {
			return &ValidationError{field, ErrMissingField}
		}

		if _, exists := seen[drive.ID]; exists {
			return &ValidationError{
				field,
				fmt.Errorf("%w: %s", ErrDuplicateDriveID, drive.ID),
			}
		}

		seen[drive.ID] = struct{}{}
	}

	return nil
}

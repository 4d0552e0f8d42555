// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "errors"

var (
	// ErrUnknownValue is returned if an enumerated field has a value that is
	// not supported.
	ErrUnknownValue = errors.New("unknown value")

	// ErrDuplicateDriveID is returned if two drives share the same id.
	ErrDuplicateDriveID = errors.New("duplicate drive id")

	// ErrMissingField is returned if a required field is empty.
	ErrMissingField = errors.New("missing field")
)

// ValidationError indicates an invalid [Snapshot].
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the [error] interface.
func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

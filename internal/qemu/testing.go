// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"

	"github.com/stretchr/testify/assert"
)

// ArgumentValues returns the values following each occurrence of the given
// flag in args.
func ArgumentValues(args []string, flag string) []string {
	var values []string

	for idx, arg := range args[:max(len(args)-1, 0)] {
		if arg == flag {
			values = append(values, args[idx+1])
		}
	}

	return values
}

// ArgumentValueAssertionFunc returns an [assert.ComparisonAssertionFunc] that
// can be used to assert the value of the first occurrence of the given flag
// in an argument slice.
func ArgumentValueAssertionFunc(
	flag string,
	assertion assert.ComparisonAssertionFunc,
) assert.ComparisonAssertionFunc {
	return func(t assert.TestingT, arg1, arg2 any, arg3 ...any) bool {
		args, ok := arg1.([]string)
		if !assert.True(t, ok, "first argument should be []string") {
			return false
		}

		values := ArgumentValues(args, flag)
		if len(values) == 0 {
			return assert.Fail(t, "Argument not found", flag)
		}

		return assertion(t, values[0], arg2, arg3...)
	}
}

// ContainsArgumentValue returns if the given flag is followed by value
// anywhere in args.
func ContainsArgumentValue(args []string, flag, value string) bool {
	return slices.Contains(ArgumentValues(args, flag), value)
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

type outputFormat string

const (
	// formatLines writes one argument per line. Argument lists are separated
	// by an empty line.
	formatLines outputFormat = "lines"
	// formatNull terminates each argument with a NUL byte, as expected by
	// "xargs -0". Argument lists are separated by an additional NUL byte.
	formatNull outputFormat = "null"
	// formatShell writes each argument list as a single line quoted for
	// POSIX shells.
	formatShell outputFormat = "shell"
)

func parseOutputFormat(s string) (outputFormat, error) {
	format := outputFormat(s)

	if !slices.Contains([]outputFormat{formatLines, formatNull, formatShell}, format) {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}

	return format, nil
}

// writeArgumentLists writes the argument lists in the given format.
func writeArgumentLists(w io.Writer, format outputFormat, lists [][]string) error {
	var b strings.Builder

	for idx, args := range lists {
		switch format {
		case formatLines:
			if idx > 0 {
				b.WriteString("\n")
			}

			for _, arg := range args {
				b.WriteString(arg + "\n")
			}
		case formatNull:
			if idx > 0 {
				b.WriteString("\x00")
			}

			for _, arg := range args {
				b.WriteString(arg + "\x00")
			}
		case formatShell:
			quoted := make([]string, len(args))
			for i, arg := range args {
				quoted[i] = shellQuote(arg)
			}

			b.WriteString(strings.Join(quoted, " ") + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func isShellSafe(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		strings.ContainsRune("@%+=:,./_-", r)
}

// shellQuote quotes s for POSIX shells. Words consisting of safe characters
// only are returned as is.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return !isShellSafe(r) }) == -1 {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"regexp"
	"strings"
)

// userWord matches a word of non-whitespace characters that may contain
// double-quoted spans with whitespace. A quote without a closing counterpart
// is a plain character of the word.
var userWord = regexp.MustCompile(`(?:[^\s"]|"[^"]*"|")+`)

// SplitUserArguments splits the free-text argument strings into words.
//
// Words are separated by whitespace unless it is within double quotes. Quote
// characters are removed from the words. Unbalanced quotes never fail the
// split.
func SplitUserArguments(texts []string) []string {
	var words []string

	for _, text := range texts {
		for _, word := range userWord.FindAllString(text, -1) {
			words = append(words, strings.ReplaceAll(word, `"`, ""))
		}
	}

	return words
}

// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package argv

import "strings"

// keyValueSeparator separates the key from the value of a property.
const keyValueSeparator = "="

// propertySeparator separates properties within a single argument.
const propertySeparator = ","

// Token is a single element of a [Sequence].
type Token struct {
	text     string
	property bool
}

// Complete returns a [Token] that is emitted verbatim as its own argument.
//
// An empty complete token terminates a property run without emitting
// anything.
func Complete(text string) Token {
	return Token{text: text}
}

// Property returns a [Token] that is merged with adjacent property tokens
// into the next emitted argument.
func Property(text string) Token {
	return Token{text: text, property: true}
}

// Text returns the text of the [Token].
func (t Token) Text() string {
	return t.text
}

// IsProperty returns if the [Token] is a property fragment.
func (t Token) IsProperty() bool {
	return t.property
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.property {
		return "property(" + t.text + ")"
	}

	return "complete(" + t.text + ")"
}

// joinProperties merges a property run into a single argument.
//
// Empty properties are skipped. A property ending with "=" is directly
// followed by the next one, so a "file=" fragment can be completed by a
// separately computed path. All other properties are separated by comma.
func joinProperties(props []string) string {
	var b strings.Builder

	for _, prop := range props {
		if prop == "" {
			continue
		}

		if b.Len() > 0 && !strings.HasSuffix(b.String(), keyValueSeparator) {
			b.WriteString(propertySeparator)
		}

		b.WriteString(prop)
	}

	return b.String()
}

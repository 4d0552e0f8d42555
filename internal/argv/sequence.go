// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package argv

// Sequence is an ordered list of [Token]s.
//
// Conditional and repeated parts are added with regular control flow. Nested
// sequences are added with [Sequence.Append] and are flattened on insertion,
// so any property run of the nested sequence ends at its boundary.
type Sequence []Token

// Add adds the given [Token]s to the sequence.
func (s *Sequence) Add(tokens ...Token) {
	*s = append(*s, tokens...)
}

// Flag adds each given text as [Complete] token.
func (s *Sequence) Flag(texts ...string) {
	for _, text := range texts {
		s.Add(Complete(text))
	}
}

// Prop adds each given text as [Property] token.
func (s *Sequence) Prop(texts ...string) {
	for _, text := range texts {
		s.Add(Property(text))
	}
}

// End terminates the current property run.
func (s *Sequence) End() {
	s.Add(Complete(""))
}

// Option adds the flag followed by the given properties as a single
// terminated property run. It is the common shape of QEMU options like
// "-device virtio-rng-pci,id=rng0".
func (s *Sequence) Option(flag string, props ...string) {
	s.Flag(flag)
	s.Prop(props...)
	s.End()
}

// Append adds the flattened [Sequence]s. Each sequence is flattened on its
// own, so property runs never span sequence boundaries.
func (s *Sequence) Append(others ...Sequence) {
	for _, other := range others {
		for _, text := range other.Strings() {
			s.Add(Complete(text))
		}
	}
}

// Len returns the number of [Token]s in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Strings flattens the sequence into the argument strings.
//
// A [Complete] token flushes any pending property run and is then emitted
// on its own. Pending properties are flushed at the end of the sequence as
// well.
func (s Sequence) Strings() []string {
	args := make([]string, 0, len(s))

	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}

		if arg := joinProperties(pending); arg != "" {
			args = append(args, arg)
		}

		pending = pending[:0]
	}

	for _, token := range s {
		if token.property {
			pending = append(pending, token.text)
			continue
		}

		flush()

		if token.text != "" {
			args = append(args, token.text)
		}
	}

	flush()

	return args
}

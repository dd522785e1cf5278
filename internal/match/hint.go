/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package match

import (
	"unicode/utf8"

	"github.com/twinfer/minire/internal/syntax"
)

// NoStop is the stop character used when nothing follows a wildcard
// repetition. It never equals a decoded rune.
const NoStop rune = -1

// consumeUntilStop drops leading runes of target while the leading rune is
// not stop, or while target still holds more stops than the whole pattern
// source does. The source count is taken over the full pattern text, not
// over what remains of it.
func (e *evaluator) consumeUntilStop(target string, stop rune) string {
	inTarget := countRune(target, stop)
	inSource := countRune(e.source, stop)
	for target != "" {
		r, size := firstRune(target)
		if r == stop && !invalidByte(r, size) {
			if inTarget <= inSource {
				break
			}
			inTarget--
		}
		target = target[size:]
	}
	return target
}

// endsInRepetition reports whether n is a repetition or a concatenation
// whose last element ends in one.
func endsInRepetition(n syntax.Node) bool {
	switch n := n.(type) {
	case syntax.Repetition:
		return true
	case syntax.Concatenation:
		if len(n.Seq) == 0 {
			return false
		}
		return endsInRepetition(n.Seq[len(n.Seq)-1])
	}
	return false
}

// nextStop returns the stop character for a repetition followed by next:
// next's character when next is a literal, otherwise the stop carried over
// from earlier in the sequence.
func nextStop(next syntax.Node, carried rune) rune {
	if lit, ok := next.(syntax.Literal); ok {
		return lit.Char
	}
	return carried
}

func countRune(s string, r rune) int {
	if r == NoStop {
		return 0
	}
	n := 0
	for s != "" {
		c, size := firstRune(s)
		if c == r && !invalidByte(c, size) {
			n++
		}
		s = s[size:]
	}
	return n
}

func firstRune(s string) (rune, int) {
	if s == "" {
		return NoStop, 0
	}
	return utf8.DecodeRuneInString(s)
}

// invalidByte reports whether a decoded rune stands for a byte that is not
// valid UTF-8. Such a byte equals no literal and is matched only by the
// wildcard.
func invalidByte(r rune, size int) bool {
	return r == utf8.RuneError && size == 1
}

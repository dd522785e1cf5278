/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package syntax

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxDepth bounds parser recursion when no explicit limit is given.
const DefaultMaxDepth = 1000

const eof rune = -1

// parser is a cursor over the pattern. Grammar, loosest binding first:
//
//	Expression    := Concatenation ( '|' Concatenation )?
//	Concatenation := Repeated* ( '|' Concatenation )?
//	Repeated      := Atom '*'?
//	Atom          := '(' Expression ')' | any character
type parser struct {
	src      string
	pattern  []rune
	pos      int
	depth    int
	maxDepth int
}

// Compile validates pattern and, if it passes, parses it into a tree.
// maxDepth <= 0 selects DefaultMaxDepth.
func Compile(pattern string, maxDepth int) (Node, error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}
	return Parse(pattern, maxDepth)
}

// Parse builds the tree for an already validated pattern. Input left after
// the top-level expression stops at an unmatched ')' is ignored.
func Parse(pattern string, maxDepth int) (Node, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{src: pattern, pattern: []rune(pattern), maxDepth: maxDepth}
	if len(p.pattern) == 0 {
		return nil, p.errorf(KindMalformed, "empty pattern")
	}
	if !utf8.ValidString(pattern) {
		p.pos = invalidOffset(pattern)
		return nil, p.errorf(KindMalformed, "invalid UTF-8")
	}
	return p.parseExpression()
}

// invalidOffset returns the rune offset of the first byte of s that is not
// valid UTF-8.
func invalidOffset(s string) int {
	n := 0
	for s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return n
		}
		s = s[size:]
		n++
	}
	return n
}

func (p *parser) peek() rune {
	if p.pos >= len(p.pattern) {
		return eof
	}
	return p.pattern[p.pos]
}

func (p *parser) errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Pattern: p.src, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(KindTooDeep, "exceeds limit of %d", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseExpression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	if p.peek() != AltMarker {
		return left, nil
	}
	p.pos++
	right, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	return Alternation{Left: left, Right: right}, nil
}

// parseConcatenation collects terms up to the end, a ')' or a '|'. A '|'
// makes the collected terms the left side of a right-associative
// alternation.
func (p *parser) parseConcatenation() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var seq []Node
	for r := p.peek(); r != eof && r != GroupClose && r != AltMarker; r = p.peek() {
		n, err := p.parseRepeated()
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
	}
	left := Concatenation{Seq: seq}
	if p.peek() != AltMarker {
		return left, nil
	}
	p.pos++
	right, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	return Alternation{Left: left, Right: right}, nil
}

func (p *parser) parseRepeated() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek() == RepMarker {
		p.pos++
		return Repetition{Inner: atom}, nil
	}
	return atom, nil
}

func (p *parser) parseAtom() (Node, error) {
	switch r := p.peek(); r {
	case eof:
		return nil, p.errorf(KindMalformed, "expected atom, found end of pattern")
	case GroupOpen:
		p.pos++
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peek() == eof {
			return nil, p.errorf(KindMalformed, "expected %q, found end of pattern", GroupClose)
		}
		// The validator only guarantees aggregate balance; skip whatever
		// stopped the inner expression.
		p.pos++
		return inner, nil
	default:
		p.pos++
		return Literal{Char: r}, nil
	}
}

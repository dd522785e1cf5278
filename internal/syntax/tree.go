/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package syntax holds the pattern tree and the front end that builds it:
// the structural validator and the recursive-descent compiler.
package syntax

import (
	"strconv"
	"strings"
)

// Metacharacters of the pattern language.
const (
	GroupOpen  = '('
	GroupClose = ')'
	AltMarker  = '|'
	RepMarker  = '*'
	Wildcard   = '.'
)

// Node is one node of a compiled pattern tree. The concrete variants are
// Literal, Concatenation, Alternation, Repetition and Invalid; a tree is built
// once and never mutated.
type Node interface {
	String() string
	isNode()
}

// Literal matches one occurrence of Char, or any single character when Char
// is the wildcard.
type Literal struct {
	Char rune
}

// Concatenation matches its elements consecutively, in order.
type Concatenation struct {
	Seq []Node
}

// Alternation matches either side.
type Alternation struct {
	Left  Node
	Right Node
}

// Repetition matches zero or more consecutive occurrences of Inner.
type Repetition struct {
	Inner Node
}

// Invalid marks a pattern that was rejected before or during compilation.
// Err holds the reason and may be nil.
type Invalid struct {
	Err error
}

func (Literal) isNode()       {}
func (Concatenation) isNode() {}
func (Alternation) isNode()   {}
func (Repetition) isNode()    {}
func (Invalid) isNode()       {}

// IsWildcard reports whether the literal is the wildcard symbol.
func (l Literal) IsWildcard() bool { return l.Char == Wildcard }

func (l Literal) String() string {
	if l.IsWildcard() {
		return "(any)"
	}
	return "(lit " + strconv.QuoteRune(l.Char) + ")"
}

func (c Concatenation) String() string {
	var sb strings.Builder
	sb.WriteString("(concat")
	for _, n := range c.Seq {
		sb.WriteByte(' ')
		sb.WriteString(n.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (a Alternation) String() string {
	return "(alt " + a.Left.String() + " " + a.Right.String() + ")"
}

func (r Repetition) String() string {
	return "(star " + r.Inner.String() + ")"
}

func (Invalid) String() string { return "(invalid)" }

// IsInvalid reports whether n is the Invalid sentinel.
func IsInvalid(n Node) bool {
	_, ok := n.(Invalid)
	return ok
}

// Depth returns the height of the tree rooted at n. A leaf has depth 1.
func Depth(n Node) int {
	switch n := n.(type) {
	case Concatenation:
		d := 0
		for _, c := range n.Seq {
			d = max(d, Depth(c))
		}
		return d + 1
	case Alternation:
		return max(Depth(n.Left), Depth(n.Right)) + 1
	case Repetition:
		return Depth(n.Inner) + 1
	default:
		return 1
	}
}

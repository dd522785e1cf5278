/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package minire compiles and matches a small pattern language: literal
// characters, the `.` wildcard, concatenation, `|` alternation, `(...)`
// grouping and `*` repetition.
//
// Matching is anchored at both ends and reports one of three verdicts:
// Match ("YES"), NoMatch ("NO") or SyntaxError ("SYNTAX ERROR").
//
// # Supported Syntax:
//
//   - `c`: Matches the character c.
//   - `.`: Matches any single character.
//   - `xy`: Matches x followed by y.
//   - `x|y`: Matches x or y; when both match, the one consuming more wins.
//   - `x*`: Matches zero or more x.
//   - `(x)`: Groups x.
//
// The matcher does not backtrack. A `.*` is bounded by the character that
// follows it, which is a heuristic rather than a longest-match guarantee.
package minire

import (
	"strconv"

	"github.com/twinfer/minire/internal/match"
	"github.com/twinfer/minire/internal/syntax"
)

// Verdict is the outcome of matching one target.
type Verdict = match.Verdict

// Verdict values. Matched prints as YES, NoMatch as NO and SyntaxError as
// SYNTAX ERROR.
const (
	Matched     = match.Match
	NoMatch     = match.NoMatch
	SyntaxError = match.SyntaxError
)

// Node is a node of a compiled pattern tree.
type Node = syntax.Node

var (
	// ErrStructural is matched by errors for unbalanced groups or a misplaced `*`.
	ErrStructural = syntax.ErrStructural
	// ErrMalformedPattern is matched by errors for patterns that end where more
	// input was expected, including the empty pattern.
	ErrMalformedPattern = syntax.ErrMalformedPattern
	// ErrNestingTooDeep is matched by errors for patterns nested past the depth limit.
	ErrNestingTooDeep = syntax.ErrNestingTooDeep
)

// DefaultMaxDepth is the nesting limit used unless WithMaxDepth says otherwise.
const DefaultMaxDepth = syntax.DefaultMaxDepth

type options struct {
	maxDepth int
}

// Option configures compilation.
type Option func(*options)

// WithMaxDepth sets the nesting limit. Values <= 0 select DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Pattern is a compiled pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	source string
	root   syntax.Node
	err    error
}

// Compile validates and compiles pattern. The error matches ErrStructural,
// ErrMalformedPattern or ErrNestingTooDeep.
func Compile(pattern string, opts ...Option) (*Pattern, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	root, err := syntax.Compile(pattern, o.maxDepth)
	if err != nil {
		return nil, err
	}
	return &Pattern{source: pattern, root: root}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts ...Option) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic("minire: Compile(" + strconv.Quote(pattern) + "): " + err.Error())
	}
	return p
}

// CompileLine compiles pattern and never fails: a pattern that does not
// compile becomes the Invalid tree, so every target yields SyntaxError. Err
// reports the cause.
func CompileLine(pattern string, opts ...Option) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return &Pattern{source: pattern, root: syntax.Invalid{Err: err}, err: err}
	}
	return p
}

// Match reports whether target matches pattern.
func Match(pattern, target string) Verdict {
	return CompileLine(pattern).Match(target)
}

// Source returns the pattern text.
func (p *Pattern) Source() string { return p.source }

// Tree returns the compiled tree.
func (p *Pattern) Tree() Node { return p.root }

// Err returns the compile error for a pattern built by CompileLine, or nil.
func (p *Pattern) Err() error { return p.err }

// Valid reports whether the pattern compiled.
func (p *Pattern) Valid() bool { return p.err == nil && !syntax.IsInvalid(p.root) }

// String returns the pattern text.
func (p *Pattern) String() string { return p.source }

// Evaluate runs the matcher and returns its raw verdict together with the
// unconsumed remainder of target.
func (p *Pattern) Evaluate(target string) (Verdict, string) {
	return match.Evaluate(p.root, p.source, target)
}

// Match reports the overall verdict for target: Match only when the matcher
// succeeds and consumes all of target.
func (p *Pattern) Match(target string) Verdict {
	return match.Full(p.Evaluate(target))
}

/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package match evaluates compiled pattern trees against input strings.
//
// Evaluation is recursive and never backtracks. Each step receives the
// unconsumed suffix of the input and returns the suffix left after it.
// Repetition is greedy; a wildcard repetition is bounded by a lookahead
// "stop character" heuristic instead of backtracking, so the result is not
// guaranteed to be the longest match on adversarial inputs.
package match

import (
	"github.com/twinfer/minire/internal/syntax"
)

// hint is passed from a concatenation to the element being evaluated.
// active is set when the element is, or ends in, a repetition.
type hint struct {
	stop   rune
	active bool
}

var noHint = hint{stop: NoStop}

type evaluator struct {
	// source is the full pattern text the tree was compiled from.
	source string
}

// Evaluate matches target against root, which was compiled from source. It
// returns the verdict and the remainder of target left unconsumed. Match with
// a non-empty remainder is not a full match; see Full.
func Evaluate(root syntax.Node, source, target string) (Verdict, string) {
	e := &evaluator{source: source}
	return e.eval(root, target, noHint)
}

// Full reduces an Evaluate result to the overall verdict: Match only when
// the whole target was consumed.
func Full(v Verdict, remainder string) Verdict {
	if v == Match && remainder != "" {
		return NoMatch
	}
	return v
}

func (e *evaluator) eval(n syntax.Node, target string, h hint) (Verdict, string) {
	switch n := n.(type) {
	case syntax.Literal:
		return matchLiteral(n, target)
	case syntax.Concatenation:
		return e.concatenation(n, target, h)
	case syntax.Alternation:
		return e.alternation(n, target)
	case syntax.Repetition:
		return e.repetition(n, target, h)
	}
	// syntax.Invalid, or a node this evaluator does not know.
	return SyntaxError, ""
}

func matchLiteral(n syntax.Literal, target string) (Verdict, string) {
	r, size := firstRune(target)
	if size == 0 {
		return NoMatch, target
	}
	if n.IsWildcard() || (r == n.Char && !invalidByte(r, size)) {
		return Match, target[size:]
	}
	return NoMatch, target
}

func (e *evaluator) concatenation(n syntax.Concatenation, target string, h hint) (Verdict, string) {
	if len(n.Seq) == 0 {
		if target == "" {
			return Match, target
		}
		return NoMatch, target
	}

	// The stop character carries over between elements and changes only
	// when a repetition is followed by a literal.
	rest := target
	stop := h.stop
	for i, el := range n.Seq {
		eh := hint{stop: stop}
		if endsInRepetition(el) {
			if i+1 < len(n.Seq) {
				stop = nextStop(n.Seq[i+1], stop)
			} else {
				stop = h.stop
			}
			eh = hint{stop: stop, active: true}
		}
		v, r := e.eval(el, rest, eh)
		switch v {
		case SyntaxError:
			return SyntaxError, ""
		case NoMatch:
			// Discard whatever earlier elements consumed.
			return NoMatch, target
		}
		rest = r
	}
	return Match, rest
}

// alternation evaluates both branches from the same input and keeps the one
// that consumed more; the left branch wins ties.
func (e *evaluator) alternation(n syntax.Alternation, target string) (Verdict, string) {
	lv, lrest := e.eval(n.Left, target, noHint)
	rv, rrest := e.eval(n.Right, target, noHint)
	if lv == SyntaxError || rv == SyntaxError {
		return SyntaxError, ""
	}

	switch {
	case lv == Match && rv == Match:
		// Both are suffixes of target, so byte length orders them.
		if len(rrest) < len(lrest) {
			return Match, rrest
		}
		return Match, lrest
	case lv == Match:
		return Match, lrest
	case rv == Match:
		return Match, rrest
	}
	return NoMatch, target
}

// repetition always succeeds; it reports how far it got.
func (e *evaluator) repetition(n syntax.Repetition, target string, h hint) (Verdict, string) {
	if target == "" {
		return Match, target
	}

	if lit, ok := n.Inner.(syntax.Literal); ok && lit.IsWildcard() {
		if !h.active {
			return Match, target
		}
		return Match, e.consumeUntilStop(target, h.stop)
	}

	rest := target
	for rest != "" {
		v, r := e.eval(n.Inner, rest, noHint)
		if v == SyntaxError {
			return SyntaxError, ""
		}
		// An iteration that consumes nothing would repeat forever.
		if v != Match || len(r) == len(rest) {
			break
		}
		rest = r
	}
	return Match, rest
}

/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrStructural indicates a pattern rejected by the validator: unbalanced
	// groups or a misplaced repetition marker.
	ErrStructural = errors.New("structural error in pattern")
	// ErrMalformedPattern indicates the compiler ran out of input where the
	// grammar expected more.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrNestingTooDeep indicates a pattern nested past the compiler's depth
	// limit. It also matches ErrMalformedPattern.
	ErrNestingTooDeep = errors.New("pattern nesting too deep")
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	KindUnbalanced ErrorKind = iota
	KindRepetitionPlacement
	KindMalformed
	KindTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnbalanced:
		return "unbalanced groups"
	case KindRepetitionPlacement:
		return "misplaced repetition"
	case KindMalformed:
		return "malformed pattern"
	case KindTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// Error describes why a pattern could not be compiled. Pos is a rune offset
// into Pattern.
type Error struct {
	Kind    ErrorKind
	Pattern string
	Pos     int
	Msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d in %q: %s", e.Kind, e.Pos, e.Pattern, e.Msg)
}

// Is makes errors.Is match the package sentinels by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrStructural:
		return e.Kind == KindUnbalanced || e.Kind == KindRepetitionPlacement
	case ErrMalformedPattern:
		return e.Kind == KindMalformed || e.Kind == KindTooDeep
	case ErrNestingTooDeep:
		return e.Kind == KindTooDeep
	}
	return false
}

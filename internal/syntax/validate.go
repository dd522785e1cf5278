/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package syntax

import "fmt"

// Validate runs both structural pre-checks. A pattern that fails either must
// not be compiled.
func Validate(pattern string) error {
	if err := CheckBrackets(pattern); err != nil {
		return err
	}
	return CheckRepetition(pattern)
}

// CheckBrackets verifies that group markers balance in aggregate. Nesting
// order is not checked, so ")(" passes.
func CheckBrackets(pattern string) error {
	depth, n := 0, 0
	for _, r := range pattern {
		switch r {
		case GroupOpen:
			depth++
		case GroupClose:
			depth--
		}
		n++
	}
	switch {
	case depth > 0:
		return &Error{Kind: KindUnbalanced, Pattern: pattern, Pos: n,
			Msg: fmt.Sprintf("%d unclosed %q", depth, GroupOpen)}
	case depth < 0:
		return &Error{Kind: KindUnbalanced, Pattern: pattern, Pos: n,
			Msg: fmt.Sprintf("%d unopened %q", -depth, GroupClose)}
	}
	return nil
}

// CheckRepetition rejects a repetition marker at the start of the pattern or
// directly after an alternation or group-opening marker.
func CheckRepetition(pattern string) error {
	var prev rune
	i := 0
	for _, r := range pattern {
		if r == RepMarker {
			switch {
			case i == 0:
				return &Error{Kind: KindRepetitionPlacement, Pattern: pattern, Pos: i,
					Msg: "nothing to repeat"}
			case prev == AltMarker || prev == GroupOpen:
				return &Error{Kind: KindRepetitionPlacement, Pattern: pattern, Pos: i,
					Msg: fmt.Sprintf("repetition directly after %q", prev)}
			}
		}
		prev = r
		i++
	}
	return nil
}

/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package match

import "fmt"

// Verdict is the outcome of matching one target.
type Verdict int

const (
	NoMatch Verdict = iota
	Match
	SyntaxError
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "YES"
	case NoMatch:
		return "NO"
	case SyntaxError:
		return "SYNTAX ERROR"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// ParseVerdict is the inverse of String.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "YES":
		return Match, nil
	case "NO":
		return NoMatch, nil
	case "SYNTAX ERROR":
		return SyntaxError, nil
	}
	return NoMatch, fmt.Errorf("unknown verdict %q", s)
}

func (v Verdict) MarshalText() ([]byte, error) {
	switch v {
	case Match, NoMatch, SyntaxError:
		return []byte(v.String()), nil
	}
	return nil, fmt.Errorf("invalid verdict %d", int(v))
}

func (v *Verdict) UnmarshalText(b []byte) error {
	parsed, err := ParseVerdict(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

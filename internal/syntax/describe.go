/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package syntax

// Description is a serializable view of a tree, used by the tree dump.
type Description struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Char     string        `json:"char,omitempty" yaml:"char,omitempty"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Children []Description `json:"children,omitempty" yaml:"children,omitempty"`
}

// Describe converts n into its Description.
func Describe(n Node) Description {
	switch n := n.(type) {
	case Literal:
		if n.IsWildcard() {
			return Description{Kind: "wildcard"}
		}
		return Description{Kind: "literal", Char: string(n.Char)}
	case Concatenation:
		d := Description{Kind: "concatenation"}
		for _, c := range n.Seq {
			d.Children = append(d.Children, Describe(c))
		}
		return d
	case Alternation:
		return Description{Kind: "alternation", Children: []Description{Describe(n.Left), Describe(n.Right)}}
	case Repetition:
		return Description{Kind: "repetition", Children: []Description{Describe(n.Inner)}}
	case Invalid:
		d := Description{Kind: "invalid"}
		if n.Err != nil {
			d.Error = n.Err.Error()
		}
		return d
	}
	return Description{Kind: "unknown"}
}

/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/twinfer/minire"
	"github.com/twinfer/minire/internal/syntax"
)

// treeDump is the structured form of a compiled pattern.
type treeDump struct {
	Source string             `json:"source" yaml:"source"`
	Depth  int                `json:"depth" yaml:"depth"`
	Tree   syntax.Description `json:"tree" yaml:"tree"`
}

// WriteTree dumps the compiled tree of p. FormatTerminal and FormatText both
// print the s-expression form; the structured formats also carry the source
// and the tree depth.
func WriteTree(w io.Writer, f Format, p *minire.Pattern) error {
	d := treeDump{
		Source: p.Source(),
		Depth:  syntax.Depth(p.Tree()),
		Tree:   syntax.Describe(p.Tree()),
	}
	switch f {
	case FormatAuto, FormatText, FormatTerminal:
		_, err := fmt.Fprintln(w, p.Tree())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatXML:
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		root := doc.CreateElement("pattern")
		root.CreateAttr("source", d.Source)
		root.CreateAttr("depth", strconv.Itoa(d.Depth))
		treeElement(root, d.Tree)
		doc.Indent(2)
		_, err := doc.WriteTo(w)
		return err
	default:
		return fmt.Errorf("no tree writer for format %s", f)
	}
}

func treeElement(parent *etree.Element, d syntax.Description) {
	el := parent.CreateElement(d.Kind)
	if d.Char != "" {
		el.CreateAttr("char", d.Char)
	}
	if d.Error != "" {
		el.CreateAttr("error", d.Error)
	}
	for _, c := range d.Children {
		treeElement(el, c)
	}
}

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
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/twinfer/minire"
	"github.com/twinfer/minire/internal/batch"
)

// New returns a renderer writing results to w in format f. FormatAuto must be
// resolved by the caller first.
func New(f Format, w io.Writer) (batch.Renderer, error) {
	switch f {
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatTerminal:
		return newTerminalRenderer(w, termenv.ANSI256), nil
	case FormatJSON:
		return &jsonRenderer{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &yamlRenderer{enc: yaml.NewEncoder(w)}, nil
	case FormatXML:
		return newXMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("no renderer for format %s", f)
	}
}

type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) Render(res batch.Result) error {
	_, err := fmt.Fprintln(r.w, res.Verdict)
	return err
}

func (r *textRenderer) Close() error { return nil }

type terminalRenderer struct {
	w      io.Writer
	yes    lipgloss.Style
	no     lipgloss.Style
	syntax lipgloss.Style
	reason lipgloss.Style
}

func newTerminalRenderer(w io.Writer, profile termenv.Profile) *terminalRenderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)
	return &terminalRenderer{
		w:      w,
		yes:    lr.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		no:     lr.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		syntax: lr.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		reason: lr.NewStyle().Faint(true),
	}
}

func (r *terminalRenderer) Render(res batch.Result) error {
	var line string
	switch res.Verdict {
	case minire.Matched:
		line = r.yes.Render(res.Verdict.String())
	case minire.NoMatch:
		line = r.no.Render(res.Verdict.String())
	default:
		line = r.syntax.Render(res.Verdict.String())
		if res.Reason != "" {
			line += " " + r.reason.Render(res.Reason)
		}
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

func (r *terminalRenderer) Close() error { return nil }

type jsonRenderer struct {
	enc *json.Encoder
}

func (r *jsonRenderer) Render(res batch.Result) error {
	return r.enc.Encode(res)
}

func (r *jsonRenderer) Close() error { return nil }

type yamlRenderer struct {
	enc *yaml.Encoder
}

func (r *yamlRenderer) Render(res batch.Result) error {
	return r.enc.Encode(res)
}

func (r *yamlRenderer) Close() error {
	return r.enc.Close()
}

type xmlRenderer struct {
	w    io.Writer
	doc  *etree.Document
	root *etree.Element
}

func newXMLRenderer(w io.Writer) *xmlRenderer {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return &xmlRenderer{w: w, doc: doc, root: doc.CreateElement("results")}
}

func (r *xmlRenderer) Render(res batch.Result) error {
	c := r.root.CreateElement("case")
	c.CreateAttr("line", strconv.Itoa(res.Line))
	c.CreateAttr("verdict", res.Verdict.String())
	c.CreateElement("pattern").SetText(res.Pattern)
	c.CreateElement("target").SetText(res.Target)
	if res.Reason != "" {
		c.CreateElement("reason").SetText(res.Reason)
	}
	return nil
}

// Close writes the buffered document.
func (r *xmlRenderer) Close() error {
	r.doc.Indent(2)
	_, err := r.doc.WriteTo(r.w)
	return err
}

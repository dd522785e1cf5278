/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package batch drives matching over a pattern file and a target file: line
// i of one is matched against line i of the other.
package batch

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/twinfer/minire"
	"github.com/twinfer/minire/internal/errors"
	"github.com/twinfer/minire/internal/logging"
)

// Result is the outcome for one pattern/target pair.
type Result struct {
	Line    int            `json:"line" yaml:"line"`
	Pattern string         `json:"pattern" yaml:"pattern"`
	Target  string         `json:"target" yaml:"target"`
	Verdict minire.Verdict `json:"verdict" yaml:"verdict"`
	// Reason explains a SYNTAX ERROR verdict.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Err    error  `json:"-" yaml:"-"`
}

// CheckResult is the compile outcome of one pattern line.
type CheckResult struct {
	Line    int
	Pattern string
	Err     error
}

// Renderer writes results in order. Close flushes anything buffered.
type Renderer interface {
	Render(Result) error
	Close() error
}

// ReadLines reads the whole file at path and splits it into lines.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "read %s", path).WithDetail("path", path)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits s on "\n", dropping one trailing "\r" per line. A final
// line terminator does not start a new line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Pair compiles each pattern line once and matches it against the target
// line with the same index. Pairing stops at the shorter list.
func Pair(patterns, targets []string, opts ...minire.Option) []Result {
	n := min(len(patterns), len(targets))
	results := make([]Result, 0, n)
	for i := range n {
		p := minire.CompileLine(patterns[i], opts...)
		res := Result{
			Line:    i + 1,
			Pattern: patterns[i],
			Target:  targets[i],
			Verdict: p.Match(targets[i]),
			Err:     p.Err(),
		}
		if res.Err != nil {
			res.Reason = res.Err.Error()
		}
		results = append(results, res)
	}
	return results
}

// Check compiles every pattern line.
func Check(patterns []string, opts ...minire.Option) []CheckResult {
	results := make([]CheckResult, len(patterns))
	for i, src := range patterns {
		results[i] = CheckResult{Line: i + 1, Pattern: src, Err: minire.CompileLine(src, opts...).Err()}
	}
	return results
}

// Runner reads, pairs and renders.
type Runner struct {
	FS      afero.Fs
	Options []minire.Option
	Logger  zerolog.Logger
}

// NewRunner returns a Runner over fs.
func NewRunner(fs afero.Fs, opts ...minire.Option) *Runner {
	return &Runner{
		FS:      fs,
		Options: opts,
		Logger:  logging.GetLogger("batch"),
	}
}

// Run reads both files completely before matching, so a read failure
// produces no output at all. Results are rendered in line order.
func (r *Runner) Run(patternPath, targetPath string, out Renderer) error {
	done := logging.LogOperationStart(r.Logger, "run")
	defer done()

	patterns, err := ReadLines(r.FS, patternPath)
	if err != nil {
		return err
	}
	targets, err := ReadLines(r.FS, targetPath)
	if err != nil {
		return err
	}
	if len(patterns) != len(targets) {
		r.Logger.Info().
			Int("patterns", len(patterns)).
			Int("targets", len(targets)).
			Msg("Line counts differ, pairing stops at the shorter file")
	}

	for _, res := range Pair(patterns, targets, r.Options...) {
		r.Logger.Trace().
			Int("line", res.Line).
			Str("verdict", res.Verdict.String()).
			Msg("Matched")
		if err := out.Render(res); err != nil {
			return errors.Wrapf(err, errors.ErrRender, "render line %d", res.Line)
		}
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, errors.ErrRender, "flush output")
	}
	return nil
}

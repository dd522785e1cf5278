/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinfer/minire"
	"github.com/twinfer/minire/internal/batch"
	"github.com/twinfer/minire/internal/config"
	"github.com/twinfer/minire/internal/errors"
	"github.com/twinfer/minire/internal/report"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERNS",
		Short: "Compile every pattern line and report syntax errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := batch.ReadLines(a.fs, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, res := range batch.Check(patterns, minire.WithMaxDepth(a.cfg.MaxDepth)) {
				if res.Err != nil {
					fmt.Fprintf(out, "SYNTAX ERROR: %v\n", res.Err)
					continue
				}
				fmt.Fprintln(out, "OK")
			}
			return nil
		},
	}
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree PATTERN",
		Short: "Print the compiled tree of a pattern",
		Long: `Print the compiled tree of a pattern. Text output is an s-expression;
json, yaml and xml give a nested description of each node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := minire.Compile(args[0], minire.WithMaxDepth(a.cfg.MaxDepth))
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "compile pattern").WithDetail("pattern", args[0])
			}
			format, err := a.outputFormat(cmd)
			if err != nil {
				return err
			}
			if err := report.WriteTree(cmd.OutOrStdout(), format, p); err != nil {
				return errors.Wrap(err, errors.ErrRender, "write tree")
			}
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.Defaults())
				return err
			}
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrRender, "marshal configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "minire version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

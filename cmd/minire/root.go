/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/twinfer/minire"
	"github.com/twinfer/minire/internal/batch"
	"github.com/twinfer/minire/internal/config"
	"github.com/twinfer/minire/internal/errors"
	"github.com/twinfer/minire/internal/logging"
	"github.com/twinfer/minire/internal/report"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries state shared by the root command and its subcommands.
type app struct {
	fs             afero.Fs
	skipUserConfig bool

	configFile string
	format     string
	maxDepth   int
	noColor    bool
	verbosity  int

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{fs: afero.NewOsFs()})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minire PATTERNS TARGETS",
		Short: "Match pattern lines against target lines",
		Long: `minire reads a file of patterns and a file of targets and matches line i
of one against line i of the other, printing YES, NO or SYNTAX ERROR for
each pair. Patterns support literals, '.', '*', '|' and '(' ')' groups.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Newf(errors.ErrInvalidArgs,
					"usage: minire PATTERNS TARGETS: accepts 2 arg(s), received %d", len(args)).
					WithDetail("args", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			logging.Setup(a.cfg.Verbosity, cmd.ErrOrStderr(), a.cfg.NoColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE:          a.runMatch,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVarP(&a.format, "format", "f", "auto", "Output format: auto, term, text, json, yaml or xml")
	flags.IntVar(&a.maxDepth, "max-depth", minire.DefaultMaxDepth, "Maximum group nesting depth")
	flags.StringVar(&a.configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/minire/config.toml)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig layers explicitly set flags over the file and environment.
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["format"] = a.format
	}
	if flags.Changed("max-depth") {
		overrides["max_depth"] = a.maxDepth
	}
	if flags.Changed("no-color") {
		overrides["no_color"] = a.noColor
	}
	if flags.Changed("verbose") {
		overrides["verbosity"] = a.verbosity
	}

	cfg, err := config.Load(config.Options{
		File:           a.configFile,
		SkipUserConfig: a.skipUserConfig,
		Overrides:      overrides,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "load configuration")
	}
	a.cfg = cfg
	return nil
}

func (a *app) outputFormat(cmd *cobra.Command) (report.Format, error) {
	f, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return report.FormatAuto, errors.Wrap(err, errors.ErrInvalidArgs, "invalid format")
	}
	return report.Resolve(f, cmd.OutOrStdout(), a.cfg.NoColor), nil
}

func (a *app) runMatch(cmd *cobra.Command, args []string) error {
	format, err := a.outputFormat(cmd)
	if err != nil {
		return err
	}
	renderer, err := report.New(format, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidArgs, "create renderer")
	}

	log.Debug().
		Str("patterns", args[0]).
		Str("targets", args[1]).
		Str("format", format.String()).
		Msg("Matching files")

	runner := batch.NewRunner(a.fs, minire.WithMaxDepth(a.cfg.MaxDepth))
	return runner.Run(args[0], args[1], renderer)
}

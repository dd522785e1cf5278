/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package config loads the tool configuration from layered sources.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/twinfer/minire/internal/logging"
)

const (
	// AppName names the config directory under the XDG config home.
	AppName = "minire"
	// EnvPrefix prefixes environment overrides, e.g. MINIRE_MAX_DEPTH.
	EnvPrefix = "MINIRE_"
	// FileName is the config file looked up in the XDG config directories.
	FileName = "config.toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the effective configuration.
type Config struct {
	Format    string `koanf:"format" toml:"format"`
	MaxDepth  int    `koanf:"max_depth" toml:"max_depth"`
	Verbosity int    `koanf:"verbosity" toml:"verbosity"`
	NoColor   bool   `koanf:"no_color" toml:"no_color"`
}

// Options selects the sources Load reads.
type Options struct {
	// File is an explicit config file. When empty, $XDG_CONFIG_HOME/minire/config.toml
	// and the XDG config dirs are searched unless SkipUserConfig is set.
	File           string
	SkipUserConfig bool
	// Overrides holds values of command line flags that were set explicitly,
	// keyed like the config file.
	Overrides map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges defaults, config file, environment and overrides, in that
// order, and decodes the result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	path := opts.File
	if path == "" && !opts.SkipUserConfig {
		if found, err := xdg.SearchConfigFile(filepath.Join(AppName, FileName)); err == nil {
			path = found
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Format).
		Int("max_depth", cfg.MaxDepth).
		Int("verbosity", cfg.Verbosity).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Validate rejects values no component can use.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}

// Marshal renders c as TOML.
func Marshal(c *Config) ([]byte, error) {
	return gotoml.Marshal(c)
}

// Defaults returns the embedded default configuration text.
func Defaults() string {
	return string(defaultConfig)
}

// File: config.go
// Title: Application Configuration
// Description: Loads pCalc configuration from TOML or YAML files with
//              sensible defaults and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

// Config holds the pCalc application configuration
type Config struct {
	// Calculation defaults
	DefaultMethod    string `toml:"default_method" yaml:"default_method"`
	DefaultPrecision int    `toml:"default_precision" yaml:"default_precision"`

	// History store
	HistoryPath    string `toml:"history_path" yaml:"history_path"`
	HistoryEnabled bool   `toml:"history_enabled" yaml:"history_enabled"`

	// Logging
	Log LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		DefaultMethod:    "chudnovsky",
		DefaultPrecision: 50,
		HistoryPath:      "./data/history.db",
		HistoryEnabled:   true,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a configuration file, recognized by extension (.toml, .yaml,
// .yml), over the defaults. A missing file is an error; use LoadOrDefault
// at the application boundary.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConfigError, "cannot read config file").
			WithDetail("path", path)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeConfigError, "invalid TOML config").
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, apperr.Wrap(err, apperr.CodeConfigError, "invalid YAML config").
				WithDetail("path", path)
		}
	default:
		return nil, apperr.Newf(apperr.CodeConfigError, "unsupported config format: %s", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads the given file if it exists, otherwise returns the
// defaults. An empty path always returns the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.DefaultPrecision < 1 {
		return apperr.Newf(apperr.CodeConfigError, "default_precision must be at least 1, got %d", c.DefaultPrecision)
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return apperr.New(apperr.CodeConfigError, "history_path must be set when history is enabled")
	}
	return nil
}

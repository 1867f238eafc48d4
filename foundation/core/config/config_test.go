// File: config_test.go
// Title: Configuration Tests
// Description: Tests for config loading from TOML and YAML, defaults,
//              and validation.
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
	"testing"

	"github.com/msto63/pCalc/foundation/core/apperr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultMethod != "chudnovsky" {
		t.Errorf("DefaultMethod = %q, want chudnovsky", cfg.DefaultMethod)
	}
	if cfg.DefaultPrecision != 50 {
		t.Errorf("DefaultPrecision = %d, want 50", cfg.DefaultPrecision)
	}
	if !cfg.HistoryEnabled {
		t.Error("HistoryEnabled = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
default_method = "machin"
default_precision = 14

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DefaultMethod != "machin" {
		t.Errorf("DefaultMethod = %q, want machin", cfg.DefaultMethod)
	}
	if cfg.DefaultPrecision != 14 {
		t.Errorf("DefaultPrecision = %d, want 14", cfg.DefaultPrecision)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// Unset keys keep their defaults
	if cfg.HistoryPath != "./data/history.db" {
		t.Errorf("HistoryPath = %q, want default", cfg.HistoryPath)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
default_method: spigot
default_precision: 30
log:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DefaultMethod != "spigot" {
		t.Errorf("DefaultMethod = %q, want spigot", cfg.DefaultMethod)
	}
	if cfg.DefaultPrecision != 30 {
		t.Errorf("DefaultPrecision = %d, want 30", cfg.DefaultPrecision)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/nonexistent/config.toml"},
		{"unsupported extension", writeFile(t, "config.ini", "x=1")},
		{"invalid toml", writeFile(t, "bad.toml", "= broken")},
		{"invalid precision", writeFile(t, "neg.toml", "default_precision = -1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !apperr.IsCode(err, apperr.CodeConfigError) {
				t.Errorf("error code = %v, want CONFIG_ERROR", apperr.CodeOf(err))
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error: %v", err)
	}
	if cfg.DefaultMethod != Default().DefaultMethod {
		t.Error("empty path should return defaults")
	}

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault(missing) error: %v", err)
	}
	if cfg.DefaultPrecision != Default().DefaultPrecision {
		t.Error("missing file should return defaults")
	}
}

// File: config_test.go
// Title: Configuration Unit Tests
// Description: Tests for TOML/YAML parsing, dotted-key access, defaults,
//              and environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"

	perror "github.com/msto63/treegen/foundation/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "console"

[create]
target = "./out"
dir_mode = 493
skip_existing = true

[render]
ascii = false
`

const yamlContent = `
log:
  level: warn
create:
  target: /tmp/build
  skip_existing: false
`

func TestLoadFromString_TOML(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := cfg.GetInt("create.dir_mode"); got != 493 {
		t.Errorf("create.dir_mode = %d, want 493", got)
	}
	if !cfg.GetBool("create.skip_existing") {
		t.Error("create.skip_existing should be true")
	}
	if cfg.GetBool("render.ascii") {
		t.Error("render.ascii should be false")
	}
}

func TestLoadFromString_YAML(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
	if got := cfg.GetString("create.target"); got != "/tmp/build" {
		t.Errorf("create.target = %q, want /tmp/build", got)
	}
}

func TestLoad_FormatDetection(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "treegen.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlContent), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "treegen.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantFormat Format
		wantLevel  string
	}{
		{name: "toml by extension", path: tomlPath, wantFormat: FormatTOML, wantLevel: "debug"},
		{name: "yaml by extension", path: yamlPath, wantFormat: FormatYAML, wantLevel: "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.wantFormat)
			}
			if got := cfg.GetString("log.level"); got != tt.wantLevel {
				t.Errorf("log.level = %q, want %q", got, tt.wantLevel)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !perror.IsCode(err, perror.CodeMissingConfig) {
		t.Errorf("code = %v, want %v", perror.GetCode(err), perror.CodeMissingConfig)
	}
}

func TestLoad_InvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("log.level = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !perror.IsCode(err, perror.CodeInvalidConfig) {
		t.Errorf("code = %v, want %v", perror.GetCode(err), perror.CodeInvalidConfig)
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("TREEGEN_LOG_LEVEL", "trace")
	t.Setenv("TREEGEN_CREATE_DIR_MODE", "511")
	t.Setenv("TREEGEN_RENDER_ASCII", "true")

	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("env override ignored, log.level = %q", got)
	}
	if got := cfg.GetInt("create.dir_mode"); got != 511 {
		t.Errorf("env override ignored, create.dir_mode = %d", got)
	}
	if !cfg.GetBool("render.ascii") {
		t.Error("env override ignored for render.ascii")
	}
}

func TestDefaults(t *testing.T) {
	cfg := New()

	if got := cfg.GetString("log.level", "info"); got != "info" {
		t.Errorf("default not returned, got %q", got)
	}
	if got := cfg.GetInt("create.dir_mode", 0o755); got != 0o755 {
		t.Errorf("default not returned, got %d", got)
	}
	if cfg.Has("log.level") {
		t.Error("Has() should be false on empty config")
	}
}

func TestSet(t *testing.T) {
	cfg := New()
	cfg.Set("create.target", "./somewhere")
	cfg.Set("log.level", "error")

	if got := cfg.GetString("create.target"); got != "./somewhere" {
		t.Errorf("Set/Get roundtrip failed, got %q", got)
	}
	if !cfg.Has("log.level") {
		t.Error("Has() should see values stored with Set")
	}
}

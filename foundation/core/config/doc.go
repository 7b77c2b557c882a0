// Package config provides configuration management for treegen.
//
// Package: config
// Title: treegen Configuration
// Description: Loads configuration from TOML or YAML files with typed
//              accessors for dotted keys, default values, and TREEGEN_*
//              environment variable overrides. The CLI looks for a config
//              file next to the binary, in the working directory, and in
//              the user config directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.Load("treegen.toml")
//	level := cfg.GetString("log.level", "info")
//	mode := cfg.GetInt("create.dir_mode", 0o755)
package config

// File: config.go
// Title: Core Configuration Implementation
// Description: Implements the Config type with TOML and YAML parsing,
//              dotted-key lookup, typed accessors with defaults, and
//              environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	perror "github.com/msto63/treegen/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML is the default configuration format
	FormatTOML Format = iota

	// FormatYAML is supported as an alternative
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data with typed access helpers
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format

	// EnvPrefix is prepended to environment override lookups,
	// e.g. log.level -> TREEGEN_LOG_LEVEL
	envPrefix string
}

// DefaultEnvPrefix is the environment variable prefix for overrides
const DefaultEnvPrefix = "TREEGEN"

// New creates an empty configuration (defaults and env overrides only)
func New() *Config {
	return &Config{
		data:      make(map[string]interface{}),
		envPrefix: DefaultEnvPrefix,
	}
}

// Load reads configuration from the given file path. The format is
// detected from the file extension.
func Load(filePath string) (*Config, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, perror.Wrap(err, "cannot read config file").
			WithCode(perror.CodeMissingConfig).
			WithDetail("path", filePath)
	}

	format := detectFormat(filePath)
	data, err := parseContent(content, format)
	if err != nil {
		return nil, perror.Wrap(err, "cannot parse config file").
			WithCode(perror.CodeInvalidConfig).
			WithSeverity(perror.SeverityHigh).
			WithDetail("path", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: DefaultEnvPrefix,
	}, nil
}

// LoadFromString parses configuration from a string in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, perror.Wrap(err, "cannot parse config content").
			WithCode(perror.CodeInvalidConfig)
	}

	return &Config{
		data:      data,
		format:    format,
		envPrefix: DefaultEnvPrefix,
	}, nil
}

// Discover searches the standard locations for a config file and loads
// the first one found. Returns an empty config when none exists.
func Discover() (*Config, error) {
	candidates := []string{
		"treegen.toml",
		"treegen.yaml",
		filepath.Join("configs", "treegen.toml"),
	}
	if home, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "treegen", "treegen.toml"),
			filepath.Join(home, "treegen", "treegen.yaml"),
		)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}

	return New(), nil
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses raw bytes in the given format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %v", format)
	}

	return data, nil
}

// GetString returns a string value for the given dotted key
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := c.getEnvValue(key); env != "" {
		return env
	}

	if value := c.getValue(key); value != nil {
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", value)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer value for the given dotted key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env := c.getEnvValue(key); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}

	if value := c.getValue(key); value != nil {
		switch v := value.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean value for the given dotted key
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env := c.getEnvValue(key); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
	}

	if value := c.getValue(key); value != nil {
		switch v := value.(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// Has returns true if the key is present in the file or environment
func (c *Config) Has(key string) bool {
	if c.getEnvValue(key) != "" {
		return true
	}
	return c.getValue(key) != nil
}

// Set stores a value under the given dotted key
func (c *Config) Set(key string, value interface{}) {
	parts := strings.Split(key, ".")
	current := c.data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration format
func (c *Config) Format() Format {
	return c.format
}

// getValue resolves a dotted key against the nested data map
func (c *Config) getValue(key string) interface{} {
	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			current = m[part]
		case map[interface{}]interface{}:
			// yaml.v3 can produce interface-keyed maps for some inputs
			current = m[part]
		default:
			return nil
		}
	}

	return current
}

// getEnvValue checks for an environment override of the key
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a dotted key to an environment variable name
func (c *Config) formatEnvKey(key string) string {
	upper := strings.ToUpper(key)
	upper = strings.ReplaceAll(upper, ".", "_")
	upper = strings.ReplaceAll(upper, "-", "_")
	return c.envPrefix + "_" + upper
}

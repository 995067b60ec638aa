package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultFormat      = FormatText
	DefaultIndentWidth = 4
)

// Environment variable names.
const (
	EnvFormat      = "RAWLINES_FORMAT"
	EnvIndentWidth = "RAWLINES_INDENT_WIDTH"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		IndentWidth: DefaultIndentWidth,
	}
}

// applyEnvironmentOverrides applies any environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = Format(v)
	}

	if v := os.Getenv(EnvIndentWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IndentWidth = n
		}
	}
}

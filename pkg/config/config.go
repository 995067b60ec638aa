package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults; environment overrides apply either way.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format: unknown format %q (use text or json)", cfg.Format)
	}

	if cfg.IndentWidth < 1 {
		return fmt.Errorf("indent_width: must be at least 1, got %d", cfg.IndentWidth)
	}

	return nil
}

// Package config provides configuration loading and validation for rawlines.
package config

// Format selects how count reports are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Format selects the count report format (text or json).
	Format Format `yaml:"format"`

	// Library strips entry-point blocks by default, as if --library were
	// passed on every run.
	Library bool `yaml:"library"`

	// IndentWidth is the number of spaces per indentation level used when
	// discarding entry-point bodies.
	IndentWidth int `yaml:"indent_width"`
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults applied by Normalize.
const (
	DefaultOutputSuffix = ".processed"
	DefaultWorkers      = 1
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// ErrMissingField is returned when a required field is absent.
var ErrMissingField = errors.New("missing required configuration field")

// ErrInvalidValue is returned when a field holds an unsupported value.
var ErrInvalidValue = errors.New("invalid configuration value")

// Config is the unified representation of one processing run.
type Config struct {
	// Input is the path of the UTF-8 text file to process, one sentence per line.
	Input string
	// Processors is the ordered chain of plugin names applied to each line.
	Processors []string
	// OutputSuffix is appended to Input to name the output file.
	OutputSuffix string
	// Workers is the number of goroutines transforming lines.
	Workers int
	// Overwrite allows replacing an existing output file. Nil means unset.
	Overwrite *bool
	// PluginsPath is an optional directory of declarative plugin definitions.
	PluginsPath string

	LogLevel  string
	LogFormat string
}

// Merge returns a copy of base with every non-zero field of override applied.
func Merge(base, override *Config) *Config {
	out := &Config{}
	if base != nil {
		*out = *base
		out.Processors = cloneStrings(base.Processors)
	}
	if override == nil {
		return out
	}
	if override.Input != "" {
		out.Input = override.Input
	}
	if override.Processors != nil {
		out.Processors = cloneStrings(override.Processors)
	}
	if override.OutputSuffix != "" {
		out.OutputSuffix = override.OutputSuffix
	}
	if override.Workers != 0 {
		out.Workers = override.Workers
	}
	if override.Overwrite != nil {
		v := *override.Overwrite
		out.Overwrite = &v
	}
	if override.PluginsPath != "" {
		out.PluginsPath = override.PluginsPath
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		out.LogFormat = override.LogFormat
	}
	return out
}

// Normalize fills defaults and validates the configuration. It runs before
// any file is opened, so a malformed configuration never touches the disk.
func (c *Config) Normalize() error {
	c.ApplyDefaults()
	return c.Validate()
}

// ApplyDefaults fills every unset optional field.
func (c *Config) ApplyDefaults() {
	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultOutputSuffix
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Overwrite == nil {
		overwrite := true
		c.Overwrite = &overwrite
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("%w: input", ErrMissingField)
	}
	if c.Processors == nil {
		return fmt.Errorf("%w: processors", ErrMissingField)
	}
	for i, name := range c.Processors {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: processors[%d] is empty", ErrInvalidValue, i)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidValue, c.Workers)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error'", ErrInvalidValue)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format must be 'text' or 'json'", ErrInvalidValue)
	}
	return nil
}

// OutputPath returns the path of the processed file.
func (c *Config) OutputPath() string {
	suffix := c.OutputSuffix
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	return c.Input + suffix
}

// AllowOverwrite reports whether an existing output file may be replaced.
func (c *Config) AllowOverwrite() bool {
	return c.Overwrite == nil || *c.Overwrite
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

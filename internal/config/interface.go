package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads a configuration file and translates it into the
	// format-agnostic model. Fields absent from the file stay zero so that
	// Merge can layer other sources on top.
	Load(ctx context.Context, path string) (*Config, error)
}

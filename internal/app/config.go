package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/hcl"
	"github.com/vk/sentproc/internal/yamlcfg"
)

// LoaderFor picks the configuration loader matching the file extension.
func LoaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", config.ErrInvalidValue, filepath.Ext(path))
	}
}

// LoadConfig reads the optional config file at path and layers overrides on
// top of it. With an empty path only the overrides are used.
func LoadConfig(ctx context.Context, path string, overrides *config.Config) (*config.Config, error) {
	if path == "" {
		return config.Merge(nil, overrides), nil
	}
	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	fromFile, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return config.Merge(fromFile, overrides), nil
}

// Package yamlcfg provides the YAML implementation of config.Loader.
package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader reads run configurations written in YAML.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type runFile struct {
	Input        string   `yaml:"input"`
	Processors   []string `yaml:"processors"`
	OutputSuffix string   `yaml:"output_suffix"`
	Workers      int      `yaml:"workers"`
	Overwrite    *bool    `yaml:"overwrite"`
	PluginsPath  string   `yaml:"plugins_path"`
	Log          struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load implements config.Loader. Unknown keys are rejected. Relative paths
// are resolved against the directory holding the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var root runFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	cfg := &config.Config{
		Input:        resolvePath(path, root.Input),
		Processors:   root.Processors,
		OutputSuffix: root.OutputSuffix,
		Workers:      root.Workers,
		Overwrite:    root.Overwrite,
		PluginsPath:  resolvePath(path, root.PluginsPath),
		LogLevel:     root.Log.Level,
		LogFormat:    root.Log.Format,
	}
	logger.Debug("YAML loading complete.", "input", cfg.Input, "processors", cfg.Processors)
	return cfg, nil
}

func resolvePath(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

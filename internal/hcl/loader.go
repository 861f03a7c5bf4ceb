package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// runFile is the top-level schema of a run configuration file.
type runFile struct {
	Input        string    `hcl:"input,optional"`
	Processors   []string  `hcl:"processors,optional"`
	OutputSuffix string    `hcl:"output_suffix,optional"`
	Workers      int       `hcl:"workers,optional"`
	Overwrite    *bool     `hcl:"overwrite,optional"`
	PluginsPath  string    `hcl:"plugins_path,optional"`
	Log          *logBlock `hcl:"log,block"`
	Remain       hcl.Body  `hcl:",remain"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load parses one HCL run configuration. Relative input and plugin paths
// are resolved against the directory holding the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root runFile
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	warnUnknown(ctx, root.Remain, path)

	cfg := &config.Config{
		Input:        resolvePath(path, root.Input),
		Processors:   root.Processors,
		OutputSuffix: root.OutputSuffix,
		Workers:      root.Workers,
		Overwrite:    root.Overwrite,
		PluginsPath:  resolvePath(path, root.PluginsPath),
	}
	if root.Log != nil {
		cfg.LogLevel = root.Log.Level
		cfg.LogFormat = root.Log.Format
	}

	logger.Debug("HCL loading complete.", "input", cfg.Input, "processors", cfg.Processors)
	return cfg, nil
}

// warnUnknown logs attributes and blocks the schema does not know about.
func warnUnknown(ctx context.Context, body hcl.Body, path string) {
	if body == nil {
		return
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		ctxlog.FromContext(ctx).Warn("Configuration file contains unknown blocks.", "path", path)
		return
	}
	for name := range attrs {
		ctxlog.FromContext(ctx).Warn("Ignoring unknown configuration attribute.", "path", path, "attribute", name)
	}
}

func resolvePath(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

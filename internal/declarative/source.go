package declarative

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/ctxlog"
	"github.com/vk/sentproc/internal/fsutil"
	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// Parser reads the definitions held by one file.
type Parser interface {
	// Extension is the file suffix the parser understands, e.g. ".hcl".
	Extension() string
	ParseFile(ctx context.Context, path string) ([]*Definition, error)
}

// Dir is a registry.Source backed by a directory of definition files.
type Dir struct {
	Path   string
	Parser Parser
}

// NewDir returns a source reading definitions under path with parser.
func NewDir(path string, parser Parser) *Dir {
	return &Dir{Path: path, Parser: parser}
}

// Name implements registry.Source.
func (d *Dir) Name() string {
	return fmt.Sprintf("plugin directory %s", d.Path)
}

// Load implements registry.Source. Every definition is compiled before any
// of them is registered, so a malformed file never leaves half of its
// plugins behind. A configured path that does not exist is an invalid
// configuration value.
func (d *Dir) Load(ctx context.Context, r *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(d.Path); err != nil {
		return fmt.Errorf("%w: plugins path: %w", config.ErrInvalidValue, err)
	}

	files, err := fsutil.FindFilesByExtension(d.Parser.Extension(), []string{registry.ReservedPrefix, "."}, d.Path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No plugin definition files found in path", "path", d.Path)
		return nil
	}
	logger.Debug("Found plugin definition files to load", "files", files)

	for _, file := range files {
		defs, err := d.Parser.ParseFile(ctx, file)
		if err != nil {
			return err
		}

		compiled := make([]plugin.Plugin, len(defs))
		for i, def := range defs {
			if compiled[i], err = def.Compile(); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		for i, def := range defs {
			p := compiled[i]
			if _, err := r.Register(def.Name, func() plugin.Plugin { return p }); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		logger.Debug("Successfully loaded plugin definitions", "file", file, "count", len(defs))
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/ctxlog"
	"github.com/vk/sentproc/internal/declarative"
	"github.com/vk/sentproc/internal/hcl"
	"github.com/vk/sentproc/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Config
}

// New is the constructor for the main application. It builds an isolated
// logger and registry and runs plugin discovery, so the returned App always
// holds a sealed registry. When no modules are given the compiled-in
// coreModules are used.
func New(ctx context.Context, outW io.Writer, cfg *config.Config, modules ...registry.Module) (*App, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.ApplyDefaults()

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	sources := []registry.Source{registry.Modules(modules)}
	if cfg.PluginsPath != "" {
		sources = append(sources, declarative.NewDir(cfg.PluginsPath, hcl.NewPluginParser()))
	}

	reg := registry.New(registry.WithLogger(logger))
	if err := reg.Discover(ctx, sources...); err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	logger.Debug("All plugins registered.", "count", reg.Len(), "names", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

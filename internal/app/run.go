package app

import (
	"context"
	"fmt"

	"github.com/vk/sentproc/internal/ctxlog"
	"github.com/vk/sentproc/internal/pipeline"
)

// Run validates the configuration and processes the input file.
func (a *App) Run(ctx context.Context) (*pipeline.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := pipeline.Run(ctx, a.registry, pipeline.RequestFromConfig(a.config))
	if err != nil {
		a.logger.Error("Processing failed.", "input", a.config.Input, "error", err)
		return nil, err
	}

	a.logger.Debug("App.Run method finished.", "run_id", res.RunID)
	return res, nil
}

// PluginInfo describes one registered plugin.
type PluginInfo struct {
	Name        string
	Description string
}

// Plugins lists the registered plugins in name order.
func (a *App) Plugins() []PluginInfo {
	names := a.registry.Names()
	out := make([]PluginInfo, 0, len(names))
	for _, name := range names {
		desc, _ := a.registry.Describe(name)
		out = append(out, PluginInfo{Name: name, Description: desc})
	}
	return out
}

package registry

import (
	"context"
	"fmt"

	"github.com/vk/sentproc/internal/ctxlog"
)

// Source is a location holding plugin definitions, such as the table of
// compiled-in modules or a directory of declarative definition files.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load registers every eligible definition of the source into r.
	Load(ctx context.Context, r *Registry) error
}

// Discover loads every source in order and seals the registry. It stops at
// the first error, leaving the registry unsealed so that it cannot be used
// by a pipeline.
func (r *Registry) Discover(ctx context.Context, sources ...Source) error {
	logger := ctxlog.FromContext(ctx)
	if r.sealed {
		return ErrSealed
	}

	for _, src := range sources {
		before := r.Len()
		if err := src.Load(ctx, r); err != nil {
			logger.Error("Plugin discovery failed.", "source", src.Name(), "error", err)
			return fmt.Errorf("discovering plugins from %s: %w", src.Name(), err)
		}
		logger.Debug("Plugin source loaded.", "source", src.Name(), "registered", r.Len()-before)
	}

	r.Seal()
	logger.Info("Plugin discovery complete.", "plugins", r.Len())
	return nil
}

// Modules is the Source for compiled-in plugin modules.
type Modules []Module

// Name implements Source.
func (Modules) Name() string { return "built-in modules" }

// Load implements Source.
func (m Modules) Load(_ context.Context, r *Registry) error {
	for _, mod := range m {
		if err := mod.Register(r); err != nil {
			return fmt.Errorf("module %T: %w", mod, err)
		}
	}
	return nil
}

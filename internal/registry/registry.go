package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/sentproc/internal/plugin"
)

// Module is the interface that every compiled-in plugin package implements
// to be registered.
type Module interface {
	Register(r *Registry) error
}

// Registry holds the plugins of a single application instance.
type Registry struct {
	plugins map[string]plugin.Plugin
	sealed  bool
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty, unsealed Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		plugins: make(map[string]plugin.Plugin),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds one plugin with factory and stores it under name. All
// checks run before factory is invoked, so a failed call leaves the registry
// untouched. The new instance is returned for immediate use.
func (r *Registry) Register(name string, factory plugin.Factory) (plugin.Plugin, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if r.sealed {
		return nil, fmt.Errorf("registering %q: %w", name, ErrSealed)
	}
	if _, exists := r.plugins[name]; exists {
		return nil, &ConflictError{Name: name}
	}
	if factory == nil {
		return nil, fmt.Errorf("registering %q: factory is nil", name)
	}

	p := factory()
	if p == nil {
		return nil, fmt.Errorf("registering %q: factory returned nil", name)
	}
	r.logger.Debug("Registering plugin.", "name", name)
	r.plugins[name] = p
	return p, nil
}

// MustRegister is like Register but panics on error. It is meant for tests
// and for wiring that cannot fail at runtime.
func (r *Registry) MustRegister(name string, factory plugin.Factory) plugin.Plugin {
	p, err := r.Register(name, factory)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve returns the plugin registered under name.
func (r *Registry) Resolve(name string) (plugin.Plugin, error) {
	p, ok := r.plugins[name]
	if !ok {
		return nil, &UnknownPluginError{Name: name}
	}
	return p, nil
}

// Seal marks discovery as complete. Further registrations fail with
// ErrSealed. Sealing twice is harmless.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether discovery has completed.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.plugins)
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description of the named plugin, or an empty string
// when it has none.
func (r *Registry) Describe(name string) (string, error) {
	p, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return plugin.Describe(p), nil
}

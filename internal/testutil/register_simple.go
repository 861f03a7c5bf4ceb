package testutil

import (
	"github.com/vk/sentproc/internal/plugin"
	"github.com/vk/sentproc/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers plugins from plain functions.
type SimpleModule struct {
	Plugins map[string]plugin.Func
	// Order fixes the registration order; names missing from Plugins are
	// registered as identity plugins.
	Order []string
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) error {
	names := m.Order
	if names == nil {
		for name := range m.Plugins {
			names = append(names, name)
		}
	}
	for _, name := range names {
		fn, ok := m.Plugins[name]
		if !ok {
			fn = func(s string) string { return s }
		}
		if _, err := r.Register(name, func() plugin.Plugin { return fn }); err != nil {
			return err
		}
	}
	return nil
}

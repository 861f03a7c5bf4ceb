package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNameConflict is returned when a plugin name is registered twice.
	ErrNameConflict = errors.New("plugin name already registered")
	// ErrUnknownPlugin is returned when a name has no registered plugin.
	ErrUnknownPlugin = errors.New("unknown plugin")
	// ErrSealed is returned when registering into a registry after discovery.
	ErrSealed = errors.New("registry is sealed")
	// ErrNotSealed is returned when resolving from a registry whose discovery
	// has not completed.
	ErrNotSealed = errors.New("registry discovery has not completed")
	// ErrInvalidName is returned for names that cannot identify a plugin.
	ErrInvalidName = errors.New("invalid plugin name")
)

// ConflictError reports the name that was already taken.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("plugin %q is already registered", e.Name)
}

func (e *ConflictError) Unwrap() error { return ErrNameConflict }

// UnknownPluginError reports the name that could not be resolved.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin %q", e.Name)
}

func (e *UnknownPluginError) Unwrap() error { return ErrUnknownPlugin }

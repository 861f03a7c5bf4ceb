// Package config defines the format-agnostic run configuration and the
// Loader interface implemented by the concrete file formats.
//
// The Config is the single source of truth for the app and pipeline
// packages. Concrete loaders for HCL and YAML live in separate packages.
package config

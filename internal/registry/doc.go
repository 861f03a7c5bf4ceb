// Package registry provides the central "glue" for the plugin system.
//
// The Registry maps the names used in a processing chain (e.g.
// "replace_tags") to the plugin instances that implement them. It is built
// exactly once per application instance: sources are handed to Discover,
// which lets each of them register its plugins and then seals the registry.
// A sealed registry is read-only, so the pipeline can resolve names from
// any goroutine without locking.
//
// Registration is strict. A name that is already taken is a configuration
// error and is reported as ErrNameConflict; it is never silently skipped or
// overwritten.
package registry

// Package declarative builds plugins from definition files instead of Go
// code.
//
// A definition names a plugin and lists ordered regular-expression
// replacements plus a few normalisation switches. A Dir source walks a
// directory, parses every eligible file exactly once through a Parser and
// registers each definition. Files whose name starts with the reserved
// prefix "_" (and dot-files) are helpers and are never loaded.
package declarative

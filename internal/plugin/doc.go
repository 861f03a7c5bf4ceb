// Package plugin defines the contract every text transform satisfies.
//
// A plugin is a stateless string-to-string function. It receives one line
// of text with the line boundary already stripped and returns the
// transformed line. Plugins must not keep state between calls: the pipeline
// may invoke the same instance from several goroutines when it runs with
// more than one worker.
package plugin

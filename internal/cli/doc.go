// Package cli is responsible for parsing command-line arguments, validating
// user input, and mapping failures to process exit codes. It translates CLI
// flags and config files into the application's configuration.
package cli

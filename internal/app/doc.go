// Package app contains the core application logic. It defines the main App
// struct, how its configuration is loaded, and the processing lifecycle,
// decoupled from any specific entrypoint like a CLI.
package app

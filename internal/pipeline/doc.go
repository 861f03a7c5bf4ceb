// Package pipeline applies an ordered chain of plugins to every line of a
// text file.
//
// A run moves through three states: nothing is open until the chain has
// been resolved, then the input and the sibling output file are open while
// lines stream through, then both are closed. Every exit path, including
// errors, reaches the closed state. Resolution happens before any file is
// touched, so an unknown plugin name never leaves an output file behind.
package pipeline

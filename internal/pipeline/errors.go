package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to read the input or write the output.
	ErrIO = errors.New("i/o failure")
	// ErrOutputExists is returned when the output file exists and
	// overwriting is disabled.
	ErrOutputExists = errors.New("output file already exists")
	// ErrLineTooLong is returned for input lines longer than the reader accepts.
	ErrLineTooLong = errors.New("input line too long")
	// ErrNotRegularFile is returned when the input is a directory, device or
	// other non-regular file.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrPluginPanic is returned when a plugin panics while processing a line.
	ErrPluginPanic = errors.New("plugin panicked")
)

// IOError describes a failed file operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports ErrIO so callers can match every file failure at once.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }

// LineError attaches the 1-based input line number to a processing failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

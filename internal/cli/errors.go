package cli

import (
	"errors"

	"github.com/vk/sentproc/internal/config"
	"github.com/vk/sentproc/internal/registry"
)

// Exit codes returned by the sentproc binary.
const (
	ExitFailure = 1
	ExitUsage   = 2
	ExitPlugins = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, config.ErrMissingField), errors.Is(err, config.ErrInvalidValue):
		return ExitUsage
	case errors.Is(err, registry.ErrUnknownPlugin), errors.Is(err, registry.ErrNameConflict):
		return ExitPlugins
	default:
		return ExitFailure
	}
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Err: err}
}

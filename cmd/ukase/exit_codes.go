package main

import (
	"errors"
	"os"

	"github.com/esvolkov/ukase"
	"github.com/esvolkov/ukase/internal/config"
	"github.com/esvolkov/ukase/internal/filter"
	"github.com/esvolkov/ukase/internal/logging"
)

// Exit codes for the ukase CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or backend configuration
	ExitIO      = 3 // Resource not found or unreadable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Not found and I/O errors (exit 3)
	if errors.Is(err, ukase.ErrNotFound) ||
		errors.Is(err, ukase.ErrIO) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ukase.ErrConfiguration) ||
		errors.Is(err, ukase.ErrInvalidPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, filter.ErrInvalidExpression) ||
		errors.Is(err, logging.ErrInvalidSetting) {
		return ExitUsage
	}

	return ExitGeneral
}

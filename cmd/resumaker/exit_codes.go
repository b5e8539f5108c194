package main

import (
	"errors"

	resumaker "github.com/alnah/go-resumaker"
	"github.com/alnah/go-resumaker/internal/config"
)

// Exit codes for the resumaker CLI.
// Per-language failures are logged, not reported through the exit status.
const (
	ExitSuccess = 0 // Run finished, whatever the number of PDFs produced
	ExitGeneral = 1 // Unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, resumaker.ErrInvalidPageSize) ||
		errors.Is(err, resumaker.ErrInvalidOrientation) ||
		errors.Is(err, resumaker.ErrInvalidMargin) ||
		errors.Is(err, resumaker.ErrInvalidEngine) ||
		errors.Is(err, resumaker.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

package main

import (
	"errors"

	"github.com/mss-eng/reportpdf/internal/config"
)

// Process exit codes. 2 marks configuration mistakes so init systems
// and wrappers can tell them from runtime failures.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// exitCodeFor maps an error, possibly wrapped, onto an exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitGeneral
	}
}

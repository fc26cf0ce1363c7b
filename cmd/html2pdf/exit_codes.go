package main

import (
	"errors"
	"os"

	"github.com/alnah/html2pdf"
	"github.com/alnah/html2pdf/internal/config"
)

// Exit codes for the html2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome/pool errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, html2pdf.ErrBrowserNotFound) ||
		errors.Is(err, html2pdf.ErrPortUnavailable) ||
		errors.Is(err, html2pdf.ErrLaunchUnconfirmed) ||
		errors.Is(err, html2pdf.ErrPortConflict) ||
		errors.Is(err, html2pdf.ErrConnectionError) ||
		errors.Is(err, html2pdf.ErrNavigationError) ||
		errors.Is(err, html2pdf.ErrPDFGenerationError) ||
		errors.Is(err, html2pdf.ErrCommandTimeout) ||
		errors.Is(err, html2pdf.ErrPoolClosed) ||
		errors.Is(err, html2pdf.ErrAcquireTimeout) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, os.ErrInvalid) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}

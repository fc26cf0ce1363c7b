// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/html2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv, which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserNotFound returns hints for ErrBrowserNotFound.
func ForBrowserNotFound() string {
	var h []string

	if os.Getenv("CHROME_PATH") == "" {
		h = append(h, "set CHROME_PATH to your Chrome/Chromium binary")
	}
	if IsInContainer() {
		h = append(h, "container images often need chromium installed explicitly")
	}
	h = append(h, "or pass --chrome-path")
	return formatHints(h)
}

// ForPortUnavailable returns hints for ErrPortUnavailable.
func ForPortUnavailable() string {
	return format("all ports in the probe range are taken; set a different --base-port")
}

// ForAcquireTimeout returns hints for ErrAcquireTimeout.
func ForAcquireTimeout() string {
	return format("increase --max-connections or --acquire-timeout if conversions are queuing")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(path string) string {
	return format("checked " + path + "; pass --config with a .yaml/.yml or properties-style path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

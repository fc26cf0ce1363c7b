package html2pdf

import (
	"fmt"
	"os"
	"os/exec"
)

// chromeEnvVar is the environment variable auto-discovery consults before
// falling back to well-known install paths and a PATH lookup.
const chromeEnvVar = "CHROME_PATH"

// lookupNames are the executable names tried via exec.LookPath, in order,
// after the well-known path list (platform-specific, see
// locator_unix.go/locator_windows.go) comes up empty.
var lookupNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
}

// LocateBrowser resolves a path to a Chrome/Chromium executable.
//
// Precedence:
//  1. explicit, if non-empty (caller-supplied override).
//  2. $CHROME_PATH, if set.
//  3. well-known platform install paths that exist on disk.
//  4. exec.LookPath over a list of common executable names.
//
// Returns ErrBrowserNotFound if every tier is exhausted.
func LocateBrowser(explicit string) (string, error) {
	if explicit != "" {
		if isExecutable(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: %s is not executable", ErrBrowserNotFound, explicit)
	}

	if envPath := os.Getenv(chromeEnvVar); envPath != "" {
		if isExecutable(envPath) {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: %s=%s is not executable", ErrBrowserNotFound, chromeEnvVar, envPath)
	}

	for _, candidate := range wellKnownPaths {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	for _, name := range lookupNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrBrowserNotFound
}

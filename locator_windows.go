//go:build windows

package html2pdf

import "os"

// wellKnownPaths lists install locations checked, in order, before
// falling back to a PATH lookup.
var wellKnownPaths = []string{
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files\Chromium\Application\chrome.exe`,
}

// isExecutable reports whether path exists and is a regular file.
// Windows has no POSIX executable bit; existence plus a non-directory
// check is the best signal available without invoking the file.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return true
}

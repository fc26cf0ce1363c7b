//go:build !windows

package html2pdf

import "os"

// wellKnownPaths lists install locations checked, in order, before
// falling back to a PATH lookup.
var wellKnownPaths = []string{
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/snap/bin/chromium",
	"/opt/google/chrome/google-chrome",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
}

// isExecutable reports whether path exists and carries the executable
// bit for at least one permission class. It does not guarantee the file
// is actually Chrome.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

//go:build windows

package html2pdf

import "os/exec"

// setProcessGroup is a no-op on Windows; internal/process.KillProcessGroup
// uses taskkill's tree-kill flag instead of a POSIX process group.
func setProcessGroup(cmd *exec.Cmd) {}

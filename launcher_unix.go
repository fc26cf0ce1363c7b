//go:build !windows

package html2pdf

import (
	"os/exec"
	"syscall"
)

// setProcessGroup puts the browser in its own process group so
// internal/process.KillProcessGroup can reap Chrome's helper processes
// along with it.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

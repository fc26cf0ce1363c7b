//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup forcibly terminates a browser process tree using
// taskkill. /F forces the kill, /T reaches every child Chrome spawned.
// Best-effort, same rationale as the Unix build.
func KillProcessGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}

//go:build !windows

package process

import "syscall"

// KillProcessGroup forcibly terminates a browser process and every
// helper process Chrome spawned under it by sending SIGKILL to the
// negative PID, i.e. the whole process group. Best-effort: a launcher
// that already waited out its graceful-shutdown window has no better
// fallback than to ignore the error here.
func KillProcessGroup(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

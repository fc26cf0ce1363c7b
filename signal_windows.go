//go:build windows

package html2pdf

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext returns a context canceled on SIGINT, for the shared
// pool's best-effort process-exit shutdown hook. syscall.SIGTERM is not
// available on Windows.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

package html2pdf

import (
	"context"
	"sync"
	"sync/atomic"
)

var (
	sharedPool     atomic.Pointer[Pool]
	sharedPoolOnce sync.Once
	shutdownOnce   sync.Once
)

// Shared returns the process-wide Pool, constructing it from cfg on the
// first call. Every later call ignores its cfg argument and returns the
// existing instance — configuration is frozen at first use, since a
// pool already mid-flight (browsers launched, sessions handed out)
// cannot safely be reconfigured out from under its callers. Programs
// that need distinct pools with different configs should construct them
// directly with NewPool instead of going through Shared.
func Shared(cfg PoolConfig) *Pool {
	sharedPoolOnce.Do(func() {
		pool := NewPool(cfg)
		// Pre-warming is forced to zero here: Shared must return quickly
		// even on the very first call, so any actual browser launching
		// happens in the background task below rather than blocking the
		// caller.
		go pool.EnsureMin(context.Background())
		installShutdownHook(pool)
		sharedPool.Store(pool)
	})
	return sharedPool.Load()
}

// installShutdownHook arranges for the shared pool to shut down when the
// process receives SIGINT/SIGTERM. This is a convenience for CLI-style
// programs; a long-lived server embedding this package should install
// its own signal handling and call Shutdown explicitly instead of
// relying on this hook (see the Shared config-freeze note in
// DESIGN.md's Open Questions).
func installShutdownHook(pool *Pool) {
	shutdownOnce.Do(func() {
		go func() {
			ctx, stop := notifyContext(context.Background())
			defer stop()
			<-ctx.Done()
			_ = pool.Shutdown()
		}()
	})
}

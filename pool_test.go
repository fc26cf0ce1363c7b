package html2pdf

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPool_Stats_Empty(t *testing.T) {
	p := NewPool(NewPoolConfig())
	defer p.Shutdown()

	got := p.Stats()
	want := PoolStats{}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestPool_Shutdown_Idempotent(t *testing.T) {
	p := NewPool(NewPoolConfig())

	if err := p.Shutdown(); err != nil {
		t.Fatalf("first Shutdown: %v", err)
	}
	if err := p.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
}

func TestPool_Acquire_AfterShutdown(t *testing.T) {
	p := NewPool(NewPoolConfig())
	_ = p.Shutdown()

	_, err := p.Acquire(context.Background())
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire after Shutdown = %v, want ErrPoolClosed", err)
	}
}

func TestPool_Acquire_NilContextUsesAcquireTimeout(t *testing.T) {
	cfg := NewPoolConfig()
	cfg.ChromePath = "/nonexistent/chrome-binary-for-test"
	cfg.AcquireTimeout = 100 * time.Millisecond
	p := NewPool(cfg)
	defer p.Shutdown()

	start := time.Now()
	_, err := p.Acquire(nil)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Acquire with bad chrome path succeeded, want an error")
	}
	if elapsed > time.Second {
		t.Errorf("Acquire took %v, want it bounded by AcquireTimeout", elapsed)
	}
}

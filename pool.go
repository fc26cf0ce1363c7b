package html2pdf

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session is a browser-backed CDP connection handed out by Pool.Acquire
// and returned via Pool.Release. Its ID is stable for the session's
// lifetime and is useful as a correlation key in logs.
type Session struct {
	id        uuid.UUID
	cdp       *session
	browser   *launchedBrowser
	idleSince time.Time
}

// ID returns the session's identity, assigned once at launch.
func (s *Session) ID() uuid.UUID { return s.id }

// Navigate loads url in the session's page and waits out the settle
// delay before returning.
func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.cdp.navigate(ctx, url)
}

// PrintToPDF renders the session's current page to PDF bytes.
func (s *Session) PrintToPDF(ctx context.Context, opts PdfOptions) ([]byte, error) {
	return s.cdp.printToPDF(ctx, opts)
}

func (s *Session) close() error {
	sessErr := s.cdp.close()
	browserErr := s.browser.close()
	return errors.Join(sessErr, browserErr)
}

// waitTicket is one caller's place in the FIFO acquire queue.
type waitTicket struct {
	result chan acquireResult
}

type acquireResult struct {
	session *Session
	err     error
}

// PoolOption configures a Pool at construction time.
type PoolOption func(*Pool)

// WithLogger sets the Logger a Pool reports launch, growth, eviction,
// and shutdown activity through. The default discards everything.
func WithLogger(l Logger) PoolOption {
	return func(p *Pool) { p.logger = l }
}

// Pool manages a bounded set of browser-backed CDP sessions. Sessions
// are created lazily (up to PoolConfig.MaxConnections) as Acquire
// callers need them, handed back via Release, and evicted once they sit
// idle past PoolConfig.IdleTimeout — though never below MinConnections.
//
// The zero value is not usable; construct with NewPool.
type Pool struct {
	cfg    PoolConfig
	logger Logger

	total atomic.Int64 // len(idle)+len(active) plus sessions still being launched

	mu        sync.Mutex
	idle      []*Session
	active    map[uuid.UUID]*Session
	waitQueue *list.List // of *waitTicket
	closed    bool

	waiting atomic.Int64

	dispatchTicker *time.Ticker
	evictTicker    *time.Ticker
	stopDispatch   chan struct{}
	stopEvict      chan struct{}
	wg             sync.WaitGroup
}

// dispatchInterval is how often the dispatcher polls the wait queue as a
// backstop for the direct hand-off Release already performs. 100ms
// keeps a waiter's worst-case extra latency low without busy-spinning.
const dispatchInterval = 100 * time.Millisecond

// NewPool constructs a Pool from cfg, filling unset fields with
// defaults. The pool starts with zero live sessions; call PreWarm or
// EnsureMin to populate it eagerly, or let Acquire create sessions on
// demand.
func NewPool(cfg PoolConfig, opts ...PoolOption) *Pool {
	cfg = cfg.withDefaults()

	p := &Pool{
		cfg:            cfg,
		logger:         nopLogger{},
		active:         make(map[uuid.UUID]*Session),
		waitQueue:      list.New(),
		dispatchTicker: time.NewTicker(dispatchInterval),
		evictTicker:    time.NewTicker(cfg.IdleTimeout),
		stopDispatch:   make(chan struct{}),
		stopEvict:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(2)
	go p.runDispatcher()
	go p.runEvictor()

	return p
}

// Acquire returns a Session, creating a new browser if the pool has
// room to grow, or waiting in FIFO order if it is already at
// MaxConnections. If ctx is nil or has no deadline, AcquireTimeout from
// the pool's config bounds the wait.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.AcquireTimeout)
		defer cancel()
	}

	// Fast path: an idle session is sitting ready.
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if n := len(p.idle); n > 0 {
		entry := p.idle[0]
		p.idle = p.idle[1:]
		p.active[entry.id] = entry
		p.mu.Unlock()
		return entry, nil
	}
	p.mu.Unlock()

	// Growth path: room to launch another browser.
	entry, grew, err := p.tryGrow(ctx)
	if grew {
		if err == nil {
			p.mu.Lock()
			if p.closed {
				p.mu.Unlock()
				_ = entry.close()
				p.total.Add(-1)
				return nil, ErrPoolClosed
			}
			p.active[entry.id] = entry
			p.mu.Unlock()
			return entry, nil
		}
		p.logger.Warnf("pool: failed to grow: %v", err)
	}

	// Slow path: queue and wait for a hand-off from Release or the
	// dispatcher.
	return p.waitForSession(ctx)
}

func (p *Pool) waitForSession(ctx context.Context) (*Session, error) {
	ticket := &waitTicket{result: make(chan acquireResult, 1)}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	elem := p.waitQueue.PushBack(ticket)
	p.mu.Unlock()
	p.waiting.Add(1)
	defer p.waiting.Add(-1)

	select {
	case res := <-ticket.result:
		if res.err != nil {
			return nil, res.err
		}
		return res.session, nil
	case <-ctx.Done():
		p.mu.Lock()
		queued := false
		for e := p.waitQueue.Front(); e != nil; e = e.Next() {
			if e == elem {
				queued = true
				p.waitQueue.Remove(elem)
				break
			}
		}
		p.mu.Unlock()

		// A ticket already taken off the queue has a hand-off (or
		// Shutdown's failure) on its way; wait for it and put any session
		// back instead of dropping it.
		if !queued {
			if res := <-ticket.result; res.err == nil {
				p.Release(res.session)
			}
		}
		return nil, fmt.Errorf("%w", ErrAcquireTimeout)
	}
}

// tryGrow attempts to grow total by one and launch a session for it.
// grew is false only when the pool is already at MaxConnections — that
// is not an error, just a signal to fall back to the wait queue.
func (p *Pool) tryGrow(ctx context.Context) (entry *Session, grew bool, err error) {
	for {
		cur := p.total.Load()
		if cur >= int64(p.cfg.MaxConnections) {
			return nil, false, nil
		}
		if p.total.CompareAndSwap(cur, cur+1) {
			// cur is the pool's total before this growth, i.e. total-1 at
			// claim time, so basePort+cur gives each concurrently growing
			// session a distinct starting port to probe from.
			entry, err = p.createSession(ctx, p.cfg.BasePort+int(cur))
			if err != nil {
				p.total.Add(-1)
				return nil, true, err
			}
			return entry, true, nil
		}
	}
}

func (p *Pool) createSession(ctx context.Context, basePort int) (*Session, error) {
	browserPath, err := LocateBrowser(p.cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	lb, err := launchBrowser(ctx, browserPath, basePort, p.logger)
	if err != nil {
		return nil, err
	}

	cdp, err := dialSession(ctx, lb.pageURL, p.cfg.CommandTimeout, p.logger)
	if err != nil {
		_ = lb.close()
		return nil, err
	}

	if err := cdp.enablePage(ctx); err != nil {
		_ = cdp.close()
		_ = lb.close()
		return nil, err
	}

	return &Session{id: uuid.New(), cdp: cdp, browser: lb}, nil
}

// Release returns entry to the pool: a waiting Acquire is handed the
// session directly if one is queued, otherwise it goes back on the idle
// list. Releasing into a closed pool closes the session immediately
// instead.
func (p *Pool) Release(entry *Session) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = entry.close()
		p.total.Add(-1)
		return
	}

	delete(p.active, entry.id)

	if elem := p.waitQueue.Front(); elem != nil {
		ticket := elem.Value.(*waitTicket)
		p.waitQueue.Remove(elem)
		p.active[entry.id] = entry
		p.mu.Unlock()
		ticket.result <- acquireResult{session: entry}
		return
	}

	entry.idleSince = time.Now()
	p.idle = append(p.idle, entry)
	p.mu.Unlock()
}

// runDispatcher polls the wait queue as a backstop: in steady state,
// Release's direct hand-off satisfies waiters immediately, but the
// dispatcher catches any idle session that accumulated while no Release
// happened to run (e.g. one PreWarm or EnsureMin parked while callers
// were queued). It only pairs existing idle sessions with waiters; it
// never launches a new browser for a queued caller.
func (p *Pool) runDispatcher() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopDispatch:
			return
		case <-p.dispatchTicker.C:
			p.dispatchOnce()
		}
	}
}

func (p *Pool) dispatchOnce() {
	for {
		p.mu.Lock()
		if p.closed || p.waitQueue.Len() == 0 || len(p.idle) == 0 {
			p.mu.Unlock()
			return
		}
		entry := p.idle[0]
		p.idle = p.idle[1:]
		elem := p.waitQueue.Front()
		ticket := elem.Value.(*waitTicket)
		p.waitQueue.Remove(elem)
		p.active[entry.id] = entry
		p.mu.Unlock()

		ticket.result <- acquireResult{session: entry}
	}
}

// runEvictor closes idle sessions that have sat past IdleTimeout, never
// dropping total below MinConnections.
func (p *Pool) runEvictor() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopEvict:
			return
		case <-p.evictTicker.C:
			p.evictIdle()
		}
	}
}

func (p *Pool) evictIdle() {
	now := time.Now()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	var toClose []*Session
	kept := p.idle[:0]
	for _, entry := range p.idle {
		if p.total.Load() > int64(p.cfg.MinConnections) && now.Sub(entry.idleSince) >= p.cfg.IdleTimeout {
			toClose = append(toClose, entry)
			p.total.Add(-1)
			continue
		}
		kept = append(kept, entry)
	}
	p.idle = kept
	p.mu.Unlock()

	for _, entry := range toClose {
		if err := entry.close(); err != nil {
			p.logger.Warnf("pool: evicting idle session %s: %v", entry.id, err)
		}
	}
}

// PreWarm launches up to n sessions up front, best-effort: a failure
// partway through is logged and skipped rather than aborting the rest
// of the warm-up. n is clamped to MaxConnections.
func (p *Pool) PreWarm(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	if n > p.cfg.MaxConnections {
		n = p.cfg.MaxConnections
	}

	for i := 0; i < n; i++ {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		entry, grew, err := p.tryGrow(warmCtx)
		cancel()
		if !grew {
			return
		}
		if err != nil {
			p.logger.Warnf("pool: prewarm session %d/%d failed: %v", i+1, n, err)
			continue
		}

		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			_ = entry.close()
			p.total.Add(-1)
			return
		}
		entry.idleSince = time.Now()
		p.idle = append(p.idle, entry)
		p.mu.Unlock()
	}
}

// ensureMinMaxRetries bounds how many consecutive launch failures EnsureMin
// tolerates before giving up on reaching MinConnections. A persistently bad
// browser path (or missing binary) should not spin this background task
// forever; it logs and stops instead.
const ensureMinMaxRetries = 5

// EnsureMin grows the pool up to MinConnections, one session at a time
// with a pause between launches so a misconfigured browser path doesn't
// spin through dozens of failing launches back to back. Intended to run
// as a background task after a forced-to-zero PreWarm at startup. Gives
// up after ensureMinMaxRetries consecutive failures.
func (p *Pool) EnsureMin(ctx context.Context) {
	failures := 0
	for p.total.Load() < int64(p.cfg.MinConnections) {
		entry, grew, err := p.tryGrow(ctx)
		if !grew {
			return
		}
		if err != nil {
			failures++
			p.logger.Warnf("pool: ensure-min session failed (%d/%d): %v", failures, ensureMinMaxRetries, err)
			if failures >= ensureMinMaxRetries {
				p.logger.Errorf("pool: ensure-min giving up after %d consecutive failures", failures)
				return
			}
			time.Sleep(time.Second)
			continue
		}
		failures = 0

		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			_ = entry.close()
			p.total.Add(-1)
			return
		}
		entry.idleSince = time.Now()
		p.idle = append(p.idle, entry)
		p.mu.Unlock()

		time.Sleep(time.Second)
	}
}

// Shutdown idempotently stops the pool: queued waiters are all failed
// with ErrPoolClosed, idle sessions are closed immediately, and active
// sessions are left alone — each closes for real the next time its
// owner calls Release.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true

	idle := p.idle
	p.idle = nil

	var waiters []*waitTicket
	for e := p.waitQueue.Front(); e != nil; e = e.Next() {
		waiters = append(waiters, e.Value.(*waitTicket))
	}
	p.waitQueue.Init()
	p.mu.Unlock()

	close(p.stopDispatch)
	close(p.stopEvict)
	p.dispatchTicker.Stop()
	p.evictTicker.Stop()
	p.wg.Wait()

	for _, t := range waiters {
		t.result <- acquireResult{err: ErrPoolClosed}
	}

	var errs []error
	for _, entry := range idle {
		if err := entry.close(); err != nil {
			errs = append(errs, err)
		}
		p.total.Add(-1)
	}
	return errors.Join(errs...)
}

// Stats returns a snapshot of the pool's current bookkeeping.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PoolStats{
		Total:   int(p.total.Load()),
		Active:  len(p.active),
		Idle:    len(p.idle),
		Waiting: int(p.waiting.Load()),
	}
}

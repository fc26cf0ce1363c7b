package html2pdf

import "errors"

// Sentinel errors covering every failure mode the pool and its
// collaborators can report. Callers should use errors.Is against these
// rather than matching on message text.
var (
	// ErrBrowserNotFound means no usable Chrome/Chromium executable could
	// be resolved through the override, config, environment, or
	// auto-discovery path.
	ErrBrowserNotFound = errors.New("browser executable not found")

	// ErrPortUnavailable means the requested debugging port (and, for the
	// launcher's fallback range, every probed port after it) could not be
	// bound.
	ErrPortUnavailable = errors.New("debugging port unavailable")

	// ErrLaunchUnconfirmed means the browser process could not be started,
	// or did not print a recognizable "DevTools listening on" line within
	// its first 100 lines of output or before its output ended.
	ErrLaunchUnconfirmed = errors.New("browser launch not confirmed")

	// ErrPortConflict means the browser's own stderr reported that the
	// requested port was already bound by another process.
	ErrPortConflict = errors.New("debugging port already in use")

	// ErrConnectionError covers websocket dial failures and unexpected
	// disconnects of an established CDP session.
	ErrConnectionError = errors.New("cdp connection error")

	// ErrNavigationError covers Page.navigate commands answered with an
	// error reply.
	ErrNavigationError = errors.New("page navigation failed")

	// ErrPDFGenerationError covers Page.printToPDF failures, including a
	// missing or malformed result.data field.
	ErrPDFGenerationError = errors.New("pdf generation failed")

	// ErrPoolClosed is returned by Acquire once Shutdown has been called,
	// including to callers that were still waiting in Acquire at the time.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrAcquireTimeout is returned when Acquire's context is done before a
	// session becomes available.
	ErrAcquireTimeout = errors.New("timed out waiting for a session")

	// ErrCommandTimeout is returned when a CDP command receives no
	// response within the session's command timeout.
	ErrCommandTimeout = errors.New("cdp command timed out")
)

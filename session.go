package html2pdf

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

// cdpResponse is the envelope every CDP command response arrives in.
// Asynchronous events share the same websocket but carry no "id" and are
// silently ignored by readLoop.
type cdpResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// session is a persistent JSON-over-websocket connection to a single
// browser page target. Request IDs are strictly monotonic and never
// reused; at most one pending completion exists per ID at a time.
type session struct {
	conn           *websocket.Conn
	nextID         atomic.Int64
	commandTimeout time.Duration
	logger         Logger

	mu      sync.Mutex
	pending map[int64]chan *cdpResponse // nil once the connection has failed

	closeOnce sync.Once
	closed    chan struct{}
}

// dialSession opens a websocket connection to a page's debugger URL and
// starts its read loop. A nil logger discards everything.
func dialSession(ctx context.Context, pageURL string, commandTimeout time.Duration, logger Logger) (*session, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", ErrConnectionError, pageURL, err)
	}
	if logger == nil {
		logger = nopLogger{}
	}

	s := &session{
		conn:           conn,
		commandTimeout: commandTimeout,
		logger:         logger,
		pending:        make(map[int64]chan *cdpResponse),
		closed:         make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

// readLoop is the sole reader of the websocket connection. It dispatches
// each response to the channel registered for its ID, drops events (no
// ID), and on any read error fails every still-pending call and marks
// the session dead.
func (s *session) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.failPending()
			close(s.closed)
			return
		}

		var resp cdpResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			continue
		}
		if resp.ID == 0 {
			continue // event, not a command reply
		}

		s.mu.Lock()
		ch, ok := s.pending[resp.ID]
		if ok {
			delete(s.pending, resp.ID)
		}
		s.mu.Unlock()

		if ok {
			ch <- &resp
		}
	}
}

func (s *session) failPending() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, ch := range pending {
		close(ch)
	}
}

func (s *session) removePending(id int64) {
	s.mu.Lock()
	if s.pending != nil {
		delete(s.pending, id)
	}
	s.mu.Unlock()
}

// call sends a CDP command and waits for its correlated response,
// bounded by the session's command timeout and ctx.
func (s *session) call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	id := s.nextID.Add(1)
	ch := make(chan *cdpResponse, 1)

	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: session closed", ErrConnectionError)
	}
	s.pending[id] = ch
	s.mu.Unlock()

	payload := map[string]any{"id": id, "method": method}
	if params != nil {
		payload["params"] = params
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.removePending(id)
		return nil, fmt.Errorf("html2pdf: encoding %s command: %w", method, err)
	}

	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.removePending(id)
		return nil, fmt.Errorf("%w: writing %s: %v", ErrConnectionError, method, err)
	}

	timer := time.NewTimer(s.commandTimeout)
	defer timer.Stop()

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, fmt.Errorf("%w: connection closed while awaiting %s", ErrConnectionError, method)
		}
		if len(resp.Error) > 0 {
			return nil, fmt.Errorf("%w: %s: %s", cdpErrorSentinel(method), method, parseCDPError(resp.Error))
		}
		return resp.Result, nil
	case <-timer.C:
		s.removePending(id)
		return nil, fmt.Errorf("%w: %s", ErrCommandTimeout, method)
	case <-ctx.Done():
		s.removePending(id)
		return nil, ctx.Err()
	}
}

// parseCDPError renders a CDP error field tolerantly. Depending on
// Chrome version and command, "error" shows up as a plain string, an
// object carrying a "message" key, or something else entirely — gjson
// lets us probe the shape without a discriminated-union struct.
func parseCDPError(raw json.RawMessage) string {
	result := gjson.ParseBytes(raw)
	if msg := result.Get("message"); msg.Exists() {
		return msg.String()
	}
	if result.Type == gjson.String {
		return result.String()
	}
	return result.Raw
}

// cdpErrorSentinel maps a failing CDP method to the taxonomy error its
// failure should surface as.
func cdpErrorSentinel(method string) error {
	switch method {
	case "Page.navigate":
		return ErrNavigationError
	case "Page.printToPDF":
		return ErrPDFGenerationError
	default:
		return ErrConnectionError
	}
}

// enablePage turns on Page domain events, a prerequisite Chrome expects
// before Page.navigate and Page.printToPDF are meaningful.
func (s *session) enablePage(ctx context.Context) error {
	_, err := s.call(ctx, "Page.enable", nil)
	return err
}

// navigate sends Page.navigate and then waits a fixed settle delay.
// Chrome's navigate command itself returns before the page has finished
// loading; there is no portable "page is ready" signal without subscribing
// to lifecycle events, so a short sleep stands in for one.
func (s *session) navigate(ctx context.Context, url string) error {
	result, err := s.call(ctx, "Page.navigate", map[string]any{"url": url})
	if err != nil {
		return err
	}
	// Page.navigate can report success at the CDP level while still
	// carrying a load failure in result.errorText (e.g. a bad file:// path
	// or a blocked resource) — surface it as a warning rather than a hard
	// error, since the page may still render something.
	if errText := gjson.GetBytes(result, "errorText").String(); errText != "" {
		s.logger.Warnf("html2pdf: navigate to %s reported %s", url, errText)
	}
	select {
	case <-time.After(DefaultNavigationDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// printToPDF renders the current page to PDF bytes.
func (s *session) printToPDF(ctx context.Context, opts PdfOptions) ([]byte, error) {
	raw, err := s.call(ctx, "Page.printToPDF", opts.toCDPParams())
	if err != nil {
		return nil, err
	}

	encoded := gjson.GetBytes(raw, "data").String()
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty result.data", ErrPDFGenerationError)
	}

	pdf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding result.data: %v", ErrPDFGenerationError, err)
	}
	return pdf, nil
}

// close shuts down the websocket connection. Idempotent.
func (s *session) close() error {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
	return nil
}

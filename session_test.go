package html2pdf

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeCDPServer starts a websocket endpoint that runs handle for every
// connection, standing in for a browser's page debugger target.
func fakeCDPServer(t *testing.T, handle func(*websocket.Conn)) (wsURL string, close func()) {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		go handle(conn)
	}))

	wsURL = "ws" + strings.TrimPrefix(srv.URL, "http")
	return wsURL, srv.Close
}

func dialTestSession(t *testing.T, handle func(*websocket.Conn), timeout time.Duration) *session {
	t.Helper()
	return dialTestSessionWithLogger(t, handle, timeout, nil)
}

func dialTestSessionWithLogger(t *testing.T, handle func(*websocket.Conn), timeout time.Duration, logger Logger) *session {
	t.Helper()
	wsURL, closeSrv := fakeCDPServer(t, handle)
	t.Cleanup(closeSrv)

	s, err := dialSession(context.Background(), wsURL, timeout, logger)
	if err != nil {
		t.Fatalf("dialSession: %v", err)
	}
	t.Cleanup(func() { _ = s.close() })
	return s
}

// recordingLogger captures Warnf calls for assertions.
type recordingLogger struct {
	nopLogger
	warnings []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func TestSession_Call_Success(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		for {
			var req map[string]any
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			_ = conn.WriteJSON(map[string]any{
				"id":     req["id"],
				"result": map[string]any{"ok": true},
			})
		}
	}, 5*time.Second)

	raw, err := s.call(context.Background(), "Page.enable", nil)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !strings.Contains(string(raw), `"ok":true`) {
		t.Errorf("result = %s, want to contain ok:true", raw)
	}
}

func TestSession_Call_ErrorAsString(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{
			"id":    req["id"],
			"error": "boom",
		})
	}, 5*time.Second)

	_, err := s.call(context.Background(), "Page.navigate", nil)
	if !errors.Is(err, ErrNavigationError) {
		t.Fatalf("err = %v, want ErrNavigationError", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want to mention %q", err, "boom")
	}
}

func TestSession_Call_ErrorAsObject(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{
			"id":    req["id"],
			"error": map[string]any{"code": -32000, "message": "no such frame"},
		})
	}, 5*time.Second)

	_, err := s.call(context.Background(), "Page.printToPDF", nil)
	if !errors.Is(err, ErrPDFGenerationError) {
		t.Fatalf("err = %v, want ErrPDFGenerationError", err)
	}
	if !strings.Contains(err.Error(), "no such frame") {
		t.Errorf("err = %v, want to mention %q", err, "no such frame")
	}
}

func TestSession_Call_UnknownMethodDefaultsToConnectionError(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{"id": req["id"], "error": "x"})
	}, 5*time.Second)

	_, err := s.call(context.Background(), "Target.createTarget", nil)
	if !errors.Is(err, ErrConnectionError) {
		t.Errorf("err = %v, want ErrConnectionError", err)
	}
}

func TestSession_Call_Timeout(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		// Never responds.
		buf := make([]byte, 1)
		conn.ReadMessage()
		_ = buf
	}, 50*time.Millisecond)

	_, err := s.call(context.Background(), "Page.enable", nil)
	if !errors.Is(err, ErrCommandTimeout) {
		t.Errorf("err = %v, want ErrCommandTimeout", err)
	}
}

func TestSession_Call_ConnectionClosedMidFlight(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
		conn.Close()
	}, 5*time.Second)

	_, err := s.call(context.Background(), "Page.enable", nil)
	if !errors.Is(err, ErrConnectionError) {
		t.Errorf("err = %v, want ErrConnectionError", err)
	}
}

func TestSession_PrintToPDF_DecodesBase64(t *testing.T) {
	want := []byte("%PDF-1.7 fake content")
	encoded := base64.StdEncoding.EncodeToString(want)

	s := dialTestSession(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{
			"id":     req["id"],
			"result": map[string]any{"data": encoded},
		})
	}, 5*time.Second)

	got, err := s.printToPDF(context.Background(), DefaultPdfOptions())
	if err != nil {
		t.Fatalf("printToPDF: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("printToPDF = %q, want %q", got, want)
	}
}

func TestSession_PrintToPDF_EmptyDataIsAnError(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{
			"id":     req["id"],
			"result": map[string]any{},
		})
	}, 5*time.Second)

	_, err := s.printToPDF(context.Background(), DefaultPdfOptions())
	if !errors.Is(err, ErrPDFGenerationError) {
		t.Errorf("err = %v, want ErrPDFGenerationError", err)
	}
}

func TestSession_Navigate_WarnsOnErrorText(t *testing.T) {
	logger := &recordingLogger{}
	s := dialTestSessionWithLogger(t, func(conn *websocket.Conn) {
		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		_ = conn.WriteJSON(map[string]any{
			"id":     req["id"],
			"result": map[string]any{"errorText": "net::ERR_NAME_NOT_RESOLVED"},
		})
	}, 5*time.Second, logger)

	if err := s.navigate(context.Background(), "file:///missing.html"); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", logger.warnings)
	}
	if !strings.Contains(logger.warnings[0], "ERR_NAME_NOT_RESOLVED") {
		t.Errorf("warning = %q, want to mention the errorText", logger.warnings[0])
	}
}

func TestSession_Close_Idempotent(t *testing.T) {
	s := dialTestSession(t, func(conn *websocket.Conn) {
		conn.ReadMessage()
	}, 5*time.Second)

	if err := s.close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := s.close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

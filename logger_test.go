package html2pdf

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNopLogger_DiscardsEverything(t *testing.T) {
	var l Logger = nopLogger{}
	// None of these should panic; there is nothing else to assert against
	// a logger with no observable side effects.
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
}

func TestStdLogger_VerboseGatesDebug(t *testing.T) {
	var buf bytes.Buffer
	sl := &stdLogger{l: log.New(&buf, "", 0), verbose: false}

	sl.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Debugf with verbose=false wrote %q, want nothing", buf.String())
	}

	sl.Infof("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("Infof output = %q, want to contain %q", buf.String(), "shown 2")
	}
}

func TestStdLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	sl := &stdLogger{l: log.New(&buf, "", 0), verbose: true}

	sl.Debugf("now shown")
	if !strings.Contains(buf.String(), "now shown") {
		t.Errorf("Debugf output = %q, want to contain %q", buf.String(), "now shown")
	}
}

func TestStdLogger_LevelPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		call   func(l *stdLogger)
		prefix string
	}{
		{"info", func(l *stdLogger) { l.Infof("x") }, "INFO"},
		{"warn", func(l *stdLogger) { l.Warnf("x") }, "WARN"},
		{"error", func(l *stdLogger) { l.Errorf("x") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sl := &stdLogger{l: log.New(&buf, "", 0), verbose: true}
			tt.call(sl)
			if !strings.Contains(buf.String(), tt.prefix) {
				t.Errorf("output = %q, want prefix %q", buf.String(), tt.prefix)
			}
		})
	}
}

func TestNewStdLogger_WritesToProvidedVerbosity(t *testing.T) {
	l := NewStdLogger(false)
	if l == nil {
		t.Fatal("NewStdLogger returned nil")
	}
	if sl, ok := l.(*stdLogger); !ok || sl.verbose {
		t.Errorf("NewStdLogger(false) = %#v, want a *stdLogger with verbose=false", l)
	}
}

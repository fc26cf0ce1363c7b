package html2pdf

import (
	"fmt"
	"log"
	"os"
)

// Logger is the minimal leveled logging seam the pool and launcher write
// through. It is satisfied by *log.Logger-backed adapters so callers can
// plug in whatever logging stack their program already uses without this
// package taking a direct dependency on it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// nopLogger discards everything. It is the default for a Pool constructed
// without WithLogger.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// stdLogger adapts the standard library's *log.Logger, prefixing each
// line with its level. verbose gates Debugf output.
type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// NewStdLogger returns a Logger backed by a standard library *log.Logger
// writing to os.Stderr. When verbose is false, Debugf calls are dropped.
func NewStdLogger(verbose bool) Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags), verbose: verbose}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if !s.verbose {
		return
	}
	s.l.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

func (s *stdLogger) Infof(format string, args ...any) {
	s.l.Output(2, "INFO  "+fmt.Sprintf(format, args...))
}

func (s *stdLogger) Warnf(format string, args ...any) {
	s.l.Output(2, "WARN  "+fmt.Sprintf(format, args...))
}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.l.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}

package html2pdf

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_AreDistinctAndWrappable(t *testing.T) {
	sentinels := []error{
		ErrBrowserNotFound,
		ErrPortUnavailable,
		ErrLaunchUnconfirmed,
		ErrPortConflict,
		ErrConnectionError,
		ErrNavigationError,
		ErrPDFGenerationError,
		ErrPoolClosed,
		ErrAcquireTimeout,
		ErrCommandTimeout,
	}

	seen := make(map[string]bool)
	for _, s := range sentinels {
		if seen[s.Error()] {
			t.Errorf("duplicate sentinel message: %q", s.Error())
		}
		seen[s.Error()] = true

		wrapped := fmt.Errorf("context: %w", s)
		if !errors.Is(wrapped, s) {
			t.Errorf("errors.Is(wrapped %q, sentinel) = false, want true", s)
		}
	}
}

package html2pdf

import "testing"

func TestShared_ReturnsSameInstance(t *testing.T) {
	cfg1 := NewPoolConfig()
	cfg1.MaxConnections = 2

	p1 := Shared(cfg1)
	if p1 == nil {
		t.Fatal("Shared returned nil")
	}

	cfg2 := NewPoolConfig()
	cfg2.MaxConnections = 99 // should be ignored: config freezes at first call
	p2 := Shared(cfg2)

	if p1 != p2 {
		t.Error("Shared returned different instances across calls")
	}
	if p2.cfg.MaxConnections != 2 {
		t.Errorf("second Shared call's cfg leaked through: MaxConnections = %d, want 2", p2.cfg.MaxConnections)
	}
}

package html2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho chrome\n"), 0o755); err != nil {
		t.Fatalf("writing fixture executable: %v", err)
	}
}

func TestLocateBrowser_Explicit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit fixture is unix-specific")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "chrome")
	writeExecutable(t, path)

	got, err := LocateBrowser(path)
	if err != nil {
		t.Fatalf("LocateBrowser(%q) error = %v", path, err)
	}
	if got != path {
		t.Errorf("LocateBrowser(%q) = %q, want %q", path, got, path)
	}
}

func TestLocateBrowser_ExplicitNotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-binary.txt")
	if err := os.WriteFile(path, []byte("nope"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LocateBrowser(path)
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("LocateBrowser(%q) error = %v, want ErrBrowserNotFound", path, err)
	}
}

func TestLocateBrowser_ExplicitMissing(t *testing.T) {
	_, err := LocateBrowser("/definitely/does/not/exist/chrome")
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("err = %v, want ErrBrowserNotFound", err)
	}
}

func TestLocateBrowser_EnvVar(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit fixture is unix-specific")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "chrome-from-env")
	writeExecutable(t, path)

	old := os.Getenv("CHROME_PATH")
	os.Setenv("CHROME_PATH", path)
	defer os.Setenv("CHROME_PATH", old)

	got, err := LocateBrowser("")
	if err != nil {
		t.Fatalf("LocateBrowser(\"\") error = %v", err)
	}
	if got != path {
		t.Errorf("LocateBrowser(\"\") = %q, want %q", got, path)
	}
}

func TestLocateBrowser_EnvVarNotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chrome-from-env")
	if err := os.WriteFile(path, []byte("nope"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	old := os.Getenv("CHROME_PATH")
	os.Setenv("CHROME_PATH", path)
	defer os.Setenv("CHROME_PATH", old)

	_, err := LocateBrowser("")
	if !errors.Is(err, ErrBrowserNotFound) {
		t.Errorf("err = %v, want ErrBrowserNotFound", err)
	}
}

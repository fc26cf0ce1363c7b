package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDiscoverHTMLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.html", "b.HTM", "c.txt", "d.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.html"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := discoverHTMLFiles(dir)
	if err != nil {
		t.Fatalf("discoverHTMLFiles: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)

	want := []string{"a.html", "b.HTM"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDiscoverHTMLFiles_MissingDir(t *testing.T) {
	_, err := discoverHTMLFiles(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestOutputPathFor(t *testing.T) {
	got := outputPathFor("/in/dir/report.html", "/out")
	want := filepath.Join("/out", "report.pdf")
	if got != want {
		t.Errorf("outputPathFor = %q, want %q", got, want)
	}
}

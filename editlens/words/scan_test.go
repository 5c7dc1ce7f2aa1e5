package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"main.go":             "package main\n",
		"docs/readme.md":      "hello world\n",
		"image.png":           "binarydata",
		".git/config":         "ignored entirely",
		"node_modules/dep.js": "ignored entirely",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if got, want := stats.Files(), 2; got != want {
		t.Errorf("Files() = %v, want %v", got, want)
	}
	want := []Entry{
		{"hello", 1},
		{"main", 1},
		{"package", 1},
		{"world", 1},
	}
	if diff := cmp.Diff(want, stats.Top(-1)); diff != "" {
		t.Errorf("Top(-1) is different (-want, +got):\n%s", diff)
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("Scan of a missing directory succeeded, want error")
	}
}

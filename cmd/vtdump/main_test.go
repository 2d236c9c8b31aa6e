package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInput_ByteBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("abcdef"), 0644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}

	tests := []struct {
		name     string
		maxBytes int64
		want     string
	}{
		{"no limit", 0, "abcdef"},
		{"limit below size", 3, "abc"},
		{"limit above size", 100, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := readInput(&AppConfig{}, []string{path}, tt.maxBytes)
			if err != nil {
				t.Fatalf("readInput failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(data))
			}
		})
	}
}

func TestReadInput_LeavesExcessUnread(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close() // nolint: errcheck

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	if _, err := w.WriteString("abcdef"); err != nil {
		t.Fatalf("Failed to fill pipe: %v", err)
	}

	data, err := readInput(&AppConfig{}, nil, 2)
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if string(data) != "ab" {
		t.Errorf("Expected %q under the byte budget, got %q", "ab", string(data))
	}

	// Bytes past the budget stay in the stream for whoever reads next.
	w.Close() // nolint: errcheck
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to drain pipe: %v", err)
	}
	if string(rest) != "cdef" {
		t.Errorf("Expected remainder %q left unread, got %q", "cdef", string(rest))
	}
}

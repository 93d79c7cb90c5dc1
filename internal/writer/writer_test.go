package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriterReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")
	if err := os.WriteFile(path, []byte("before"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	w := NewAtomicWriter(DefaultAtomicConfig())
	if err := w.WriteFile(path, []byte("after"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "after" {
		t.Errorf("Expected 'after', got %q", got)
	}
}

func TestAtomicWriterLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")

	w := NewAtomicWriter(DefaultAtomicConfig())
	if err := w.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("Temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestAtomicWriterCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog", "family-care", "page.tsx")

	w := NewAtomicWriter(DefaultAtomicConfig())
	if err := w.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "content" {
		t.Errorf("Expected 'content', got %q", got)
	}
}

func TestAtomicWriterPreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ts")

	w := NewAtomicWriter(DefaultAtomicConfig())
	if err := w.WriteFile(path, []byte("x"), 0o755); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("Expected mode 0755, got %v", info.Mode().Perm())
	}
}

func TestAtomicWriterSummary(t *testing.T) {
	dir := t.TempDir()
	w := NewAtomicWriter(DefaultAtomicConfig())

	if got := w.Summary(); got != "No files were written." {
		t.Errorf("Unexpected empty summary: %q", got)
	}

	path := filepath.Join(dir, "a.tsx")
	if err := w.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	summary := w.Summary()
	if !strings.Contains(summary, "Wrote 1 file(s)") || !strings.Contains(summary, path) {
		t.Errorf("Unexpected summary: %q", summary)
	}
}

func TestDryRunWriterLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	w := NewDryRunWriter()
	if err := w.WriteFile(path, []byte("rewritten content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "original" {
		t.Errorf("Dry run modified the file: %q", got)
	}
}

func TestDryRunWriterSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	w := NewDryRunWriter()
	if got := w.Summary(); got != "No changes would be made." {
		t.Errorf("Unexpected empty summary: %q", got)
	}

	if err := w.WriteFile(path, []byte("1234567890"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	summary := w.Summary()
	if !strings.Contains(summary, "Would modify 1 file(s)") {
		t.Errorf("Unexpected summary: %q", summary)
	}
	if !strings.Contains(summary, "+5 bytes") {
		t.Errorf("Expected byte delta in summary: %q", summary)
	}
}

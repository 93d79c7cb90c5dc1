package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// AtomicConfig controls atomic writing behavior.
type AtomicConfig struct {
	UseFsync   bool   // force fsync before rename for durability
	TempSuffix string // suffix for temporary files
}

// DefaultAtomicConfig provides sensible defaults.
func DefaultAtomicConfig() AtomicConfig {
	return AtomicConfig{
		UseFsync:   false,
		TempSuffix: ".codemod.tmp",
	}
}

// AtomicWriter writes whole files via temp-file-plus-rename so a reader
// never observes a partially rewritten file, even across interrupts.
type AtomicWriter struct {
	config AtomicConfig

	mu      sync.Mutex
	written []string
}

// NewAtomicWriter creates a new atomic writer.
func NewAtomicWriter(config AtomicConfig) *AtomicWriter {
	return &AtomicWriter{config: config}
}

// WriteFile atomically replaces path with content, preserving perm.
// Missing parent directories are created; keeping directory creation on
// the write path means a dry run touches nothing on disk.
func (w *AtomicWriter) WriteFile(path string, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating parent directory: %w", err)
		}
	}

	tempPath := path + w.config.TempSuffix
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("writing content: %w", err)
	}

	if w.config.UseFsync {
		if err := f.Sync(); err != nil {
			f.Close()
			os.Remove(tempPath)
			return fmt.Errorf("syncing temp file: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	// The rename is the atomic step.
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	w.mu.Lock()
	w.written = append(w.written, path)
	w.mu.Unlock()
	return nil
}

// Summary returns a summary of files that were written.
func (w *AtomicWriter) Summary() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.written) == 0 {
		return "No files were written."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Wrote %d file(s):\n", len(w.written))
	for _, p := range w.written {
		fmt.Fprintf(&sb, "  %s\n", p)
	}
	return sb.String()
}

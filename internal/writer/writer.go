// Package writer abstracts write-back so dry runs and real runs share
// the same processing path. Writers are used concurrently by the file
// workers and must be safe for parallel calls on distinct paths.
package writer

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Writer provides an abstraction for file writing operations.
type Writer interface {
	WriteFile(path string, content []byte, perm os.FileMode) error
	Summary() string
}

// DryRunWriter tracks file changes without writing to disk.
type DryRunWriter struct {
	mu      sync.Mutex
	changes []fileChange
}

type fileChange struct {
	path      string
	bytesDiff int
}

// NewDryRunWriter creates a new dry-run writer.
func NewDryRunWriter() *DryRunWriter {
	return &DryRunWriter{}
}

// WriteFile records the change that would be made and leaves the file
// untouched.
func (w *DryRunWriter) WriteFile(path string, content []byte, perm os.FileMode) error {
	var originalSize int
	if stat, err := os.Stat(path); err == nil {
		originalSize = int(stat.Size())
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.changes = append(w.changes, fileChange{path: path, bytesDiff: len(content) - originalSize})
	return nil
}

// Summary returns a summary of changes that would be made.
func (w *DryRunWriter) Summary() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.changes) == 0 {
		return "No changes would be made."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Would modify %d file(s):\n", len(w.changes))
	for _, c := range w.changes {
		sign := "+"
		if c.bytesDiff < 0 {
			sign = ""
		}
		fmt.Fprintf(&sb, "  %s (%s%d bytes)\n", c.path, sign, c.bytesDiff)
	}
	return sb.String()
}

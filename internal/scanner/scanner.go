// Package scanner handles candidate-file discovery: recursive directory
// traversal with glob, gitignore and size filtering. Discovery order is
// sorted by path so repeated runs over an unchanged tree are
// reproducible.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Scanner performs filtered directory traversal.
type Scanner struct {
	maxBytes       int64
	followSymlinks bool
	includeGlobs   []string
	excludeGlobs   []string
	noGitignore    bool
	gitignore      *ignore.GitIgnore
}

// Config holds scanner configuration options.
type Config struct {
	MaxBytes       int64
	FollowSymlinks bool
	IncludeGlobs   []string
	ExcludeGlobs   []string
	NoGitignore    bool
}

// New creates a new scanner with the given configuration.
func New(cfg Config) *Scanner {
	s := &Scanner{
		maxBytes:       cfg.MaxBytes,
		followSymlinks: cfg.FollowSymlinks,
		includeGlobs:   cfg.IncludeGlobs,
		excludeGlobs:   cfg.ExcludeGlobs,
		noGitignore:    cfg.NoGitignore,
	}
	if !cfg.NoGitignore {
		s.loadGitignore()
	}
	return s
}

// loadGitignore loads .gitignore patterns from the current directory and
// its parents; closer files take precedence.
func (s *Scanner) loadGitignore() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	var files []string
	dir := cwd
	for {
		p := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(p); err == nil {
			files = append(files, p)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if len(files) == 0 {
		return
	}

	slices.Reverse(files)
	var gi *ignore.GitIgnore
	if len(files) == 1 {
		gi, err = ignore.CompileIgnoreFile(files[0])
	} else {
		gi, err = ignore.CompileIgnoreFileAndLines(files[0], files[1:]...)
	}
	if err == nil {
		s.gitignore = gi
	}
}

// ScanTargets processes a list of file and directory targets, returning
// a sorted, deduplicated list of files to process.
func (s *Scanner) ScanTargets(ctx context.Context, targets []string) ([]string, error) {
	var all []string
	for _, target := range targets {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		files, err := s.scanTarget(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("scanning target %s: %w", target, err)
		}
		all = append(all, files...)
	}

	all = dedupe(all)
	sort.Strings(all)
	return all, nil
}

// scanTarget processes a single target (file or directory).
func (s *Scanner) scanTarget(ctx context.Context, target string) ([]string, error) {
	info, err := os.Lstat(target)
	if err != nil {
		return nil, fmt.Errorf("accessing target %s: %w", target, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if !s.followSymlinks {
			return nil, nil
		}
		resolved, err := filepath.EvalSymlinks(target)
		if err != nil {
			return nil, fmt.Errorf("resolving symlink %s: %w", target, err)
		}
		return s.scanTarget(ctx, resolved)
	}

	if info.Mode().IsRegular() {
		if s.shouldProcessFile(target, info) {
			return []string{target}, nil
		}
		return nil, nil
	}

	if info.IsDir() {
		return s.scanDirectory(ctx, target)
	}

	return nil, nil
}

// scanDirectory recursively scans a directory for files.
func (s *Scanner) scanDirectory(ctx context.Context, dir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fullPath := filepath.Join(dir, path)

		if d.IsDir() {
			if s.shouldSkipDirectory(path) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("getting file info for %s: %w", fullPath, err)
			}
			if s.shouldProcessFile(fullPath, info) {
				files = append(files, fullPath)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}

	return files, nil
}

// shouldProcessFile applies the gitignore, size, and glob filters.
func (s *Scanner) shouldProcessFile(path string, info os.FileInfo) bool {
	if s.gitignore != nil {
		if rel, err := filepath.Rel(".", path); err == nil && s.gitignore.MatchesPath(rel) {
			return false
		}
	}

	if s.maxBytes > 0 && info.Size() > s.maxBytes {
		return false
	}

	if len(s.includeGlobs) > 0 {
		matched := false
		for _, pattern := range s.includeGlobs {
			if matchPattern(path, pattern) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range s.excludeGlobs {
		if matchPattern(path, pattern) {
			return false
		}
	}

	return true
}

// matchPattern performs glob matching with ** support, falling back to
// basename matching for simple patterns without path separators.
func matchPattern(path, pattern string) bool {
	if matched, err := doublestar.PathMatch(pattern, filepath.ToSlash(path)); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}

// shouldSkipDirectory prunes directories that never hold migratable
// sources.
func (s *Scanner) shouldSkipDirectory(path string) bool {
	if s.gitignore != nil {
		if rel, err := filepath.Rel(".", path); err == nil && s.gitignore.MatchesPath(rel) {
			return true
		}
	}

	dirname := filepath.Base(path)
	skipDirs := []string{".git", "vendor", "node_modules", "dist", "build", ".next"}
	if slices.Contains(skipDirs, dirname) {
		return true
	}
	if strings.HasPrefix(dirname, ".") && dirname != "." {
		return true
	}
	return false
}

// dedupe removes duplicate file paths from the list.
func dedupe(files []string) []string {
	seen := make(map[string]bool, len(files))
	var out []string
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

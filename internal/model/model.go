package model

import "regexp"

// ScopeKind selects the strategy used to resolve the structural scope
// enclosing a match.
type ScopeKind string

const (
	// ScopeNone applies no structural resolution; the idempotency guard
	// runs over a fixed-size window following the match instead.
	ScopeNone ScopeKind = "none"
	// ScopeAttribute resolves the nearest enclosing quoted attribute value.
	ScopeAttribute ScopeKind = "attribute"
	// ScopeBlock resolves the nearest brace-balanced block following the match.
	ScopeBlock ScopeKind = "block"
)

// Match is one pattern occurrence within a file's content.
type Match struct {
	Start  int
	End    int
	Text   string
	Groups []string // captured groups, empty string for unmatched ones
}

// Scope is the minimal structurally bounded span enclosing a match:
// the inside of a quoted attribute value, or the body of a balanced
// brace block. Offsets are relative to the file content; Text is the
// substring within.
type Scope struct {
	Start int
	End   int
	Text  string
}

// Context is the read-only view a replacement function gets of the file
// being rewritten: its path and the content preceding the match. Context-
// sensitive rules derive data (such as the enclosing handler's HTTP verb)
// from Before rather than rescanning the whole buffer.
type Context struct {
	Path   string
	Before string
}

// ReplaceFunc computes the replacement text for an accepted match.
// It must be pure: same inputs, same output.
type ReplaceFunc func(m Match, sc Scope, ctx Context) string

// StaticReplacement returns a ReplaceFunc that ignores its inputs.
func StaticReplacement(s string) ReplaceFunc {
	return func(Match, Scope, Context) string { return s }
}

// Rule is one pattern -> replacement transformation. Rules are immutable,
// run-wide configuration.
type Rule struct {
	ID        string
	Pattern   *regexp.Regexp
	Scope     ScopeKind
	AttrToken string // attribute-name token for ScopeAttribute, e.g. "className"

	// Marker, when non-empty, suppresses the rule wherever the resolved
	// scope already contains it. This is what makes re-runs no-ops.
	Marker string
	// MarkerWindow is the guard window in bytes after the match for rules
	// with ScopeNone. Zero means the engine default.
	MarkerWindow int

	// Where, when set, must match the resolved scope text for the rule to
	// fire. Used to restrict block rules to a legacy shape.
	Where *regexp.Regexp

	Replace ReplaceFunc
}

// Status is the per-file outcome of a run.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusModified  Status = "modified"
	StatusFailed    Status = "failed"
)

// FileResult holds the outcome of processing a single file.
type FileResult struct {
	Path     string         `json:"path"`
	Status   Status         `json:"status"`
	ByRule   map[string]int `json:"modifications_by_rule,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Diff     string         `json:"-"`
	Err      string         `json:"error,omitempty"`
	ErrCode  ErrorCode      `json:"error_code,omitempty"`
}

// Modifications returns the total modification count across all rules.
func (r FileResult) Modifications() int {
	n := 0
	for _, c := range r.ByRule {
		n += c
	}
	return n
}

// Failure records one file (or root) that could not be processed.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// RunSummary aggregates the results of a whole run. It is owned by a
// single aggregator; per-file workers never touch it directly.
type RunSummary struct {
	FilesScanned       int            `json:"files_scanned"`
	FilesModified      int            `json:"files_modified"`
	TotalModifications int            `json:"total_modifications"`
	PerRule            map[string]int `json:"per_rule"`
	Failures           []Failure      `json:"failures,omitempty"`
}

// NewRunSummary returns an empty summary ready to fold results into.
func NewRunSummary() *RunSummary {
	return &RunSummary{PerRule: make(map[string]int)}
}

// Fold merges one file's result into the summary.
func (s *RunSummary) Fold(r FileResult) {
	s.FilesScanned++
	switch r.Status {
	case StatusModified:
		s.FilesModified++
	case StatusFailed:
		s.Failures = append(s.Failures, Failure{Path: r.Path, Reason: r.Err})
	}
	for id, n := range r.ByRule {
		s.PerRule[id] += n
		s.TotalModifications += n
	}
}

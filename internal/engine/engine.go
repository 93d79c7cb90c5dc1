// Package engine applies an ordered list of rules to one file's content.
// Rules run sequentially: each rule re-scans the output of the previous
// one, so the import-injection step can run first and content rules see
// its edit, and no stale-offset bookkeeping is needed.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oxhq/codemod/internal/model"
	"github.com/oxhq/codemod/internal/scope"
)

// defaultMarkerWindow is the guard window after a match for rules with no
// scope strategy.
const defaultMarkerWindow = 100

// Engine rewrites a single content buffer. It holds only immutable
// configuration and is safe for concurrent use across files.
type Engine struct {
	rules []model.Rule
	imp   *ImportDecl
}

// New creates an engine for the given rule list and optional import
// declaration. The import, when present, is ensured before any content
// rule runs.
func New(rules []model.Rule, imp *ImportDecl) *Engine {
	return &Engine{rules: rules, imp: imp}
}

// Apply runs every configured rule against content, returning the new
// content, the per-rule modification counts, and any warnings (such as
// unterminated blocks encountered along the way). A zero-length count map
// with unchanged content means nothing fired.
func (e *Engine) Apply(path, content string) (string, map[string]int, []string) {
	counts := make(map[string]int)
	var warnings []string

	if e.imp != nil {
		next, added := EnsureImport(content, *e.imp)
		if added {
			content = next
			counts[e.imp.ID]++
		}
	}

	for _, r := range e.rules {
		next, n, warns := applyRule(path, content, r)
		content = next
		if n > 0 {
			counts[r.ID] += n
		}
		warnings = append(warnings, warns...)
	}

	return content, counts, warnings
}

// applyRule applies one rule to content: enumerate non-overlapping
// matches left to right, resolve each match's scope, evaluate the guard,
// and substitute accepted matches. Matches whose scope cannot be resolved
// are skipped unchanged; a missed transformation is always preferred over
// a corrupted file.
func applyRule(path, content string, r model.Rule) (string, int, []string) {
	locs := r.Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(locs) == 0 {
		return content, 0, nil
	}

	var b strings.Builder
	b.Grow(len(content))
	var warnings []string
	last := 0
	count := 0

	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start < last {
			// Swallowed by a previous block replacement.
			continue
		}

		segEnd := end
		var sc model.Scope
		haveScope := false
		if r.Scope != model.ScopeNone {
			resolved, err := scope.Resolve(content, start, end, r.Scope, r.AttrToken)
			if err != nil {
				if errors.Is(err, scope.ErrUnterminated) {
					warnings = append(warnings, fmt.Sprintf("rule %s: unterminated block at offset %d", r.ID, start))
				}
				continue
			}
			sc = resolved
			haveScope = true
			if r.Scope == model.ScopeBlock {
				segEnd = sc.End + 1
			}
		}

		if r.Marker != "" {
			if haveScope {
				if scope.AlreadyApplied(sc, r.Marker) {
					continue
				}
			} else if strings.Contains(guardWindow(content, start, end, r.MarkerWindow), r.Marker) {
				continue
			}
		}

		if r.Where != nil {
			// Scope-less rules evaluate the condition over the same
			// window the marker guard inspects.
			subject := sc.Text
			if !haveScope {
				subject = guardWindow(content, start, end, r.MarkerWindow)
			}
			if !r.Where.MatchString(subject) {
				continue
			}
		}

		m := matchAt(content, loc)
		ctx := model.Context{Path: path, Before: content[:start]}
		b.WriteString(content[last:start])
		b.WriteString(r.Replace(m, sc, ctx))
		last = segEnd
		count++
	}

	if count == 0 {
		return content, 0, warnings
	}
	b.WriteString(content[last:])
	return b.String(), count, warnings
}

// guardWindow is the fixed-size span the marker guard inspects when the
// rule has no scope strategy.
func guardWindow(content string, start, end, window int) string {
	if window <= 0 {
		window = defaultMarkerWindow
	}
	hi := end + window
	if hi > len(content) {
		hi = len(content)
	}
	return content[start:hi]
}

// matchAt builds a Match from a FindAllStringSubmatchIndex location.
func matchAt(content string, loc []int) model.Match {
	m := model.Match{
		Start: loc[0],
		End:   loc[1],
		Text:  content[loc[0]:loc[1]],
	}
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			m.Groups = append(m.Groups, "")
			continue
		}
		m.Groups = append(m.Groups, content[loc[i]:loc[i+1]])
	}
	return m
}

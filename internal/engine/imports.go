package engine

import (
	"regexp"
	"strings"
)

// ImportDecl describes a top-level declaration that must exist exactly
// once per file. Name and Module together form the distinguishing marker:
// if both already appear anywhere in the file the injection is a no-op.
type ImportDecl struct {
	ID        string // identifier used in per-rule totals
	Name      string // bound name, e.g. "errorResponse"
	Module    string // source module, e.g. "@/lib/api-response"
	Statement string // full line to insert
}

// importLineRe matches the "top-level ES import statement" shape.
var importLineRe = regexp.MustCompile(`^\s*import\s+.+\s+from\s+['"].+['"]`)

// EnsureImport guarantees decl exists in content exactly once, inserted
// after the last existing import line, or as the first line when the file
// has no imports. Existing import ordering is preserved.
func EnsureImport(content string, decl ImportDecl) (string, bool) {
	if strings.Contains(content, decl.Name) && strings.Contains(content, decl.Module) {
		return content, false
	}

	lines := strings.Split(content, "\n")
	lastImport := -1
	for i, line := range lines {
		if importLineRe.MatchString(line) {
			lastImport = i
		}
	}

	if lastImport >= 0 {
		lines = append(lines[:lastImport+1], append([]string{decl.Statement}, lines[lastImport+1:]...)...)
	} else {
		lines = append([]string{decl.Statement}, lines...)
	}
	return strings.Join(lines, "\n"), true
}

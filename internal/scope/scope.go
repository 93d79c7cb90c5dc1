// Package scope resolves the minimal structurally bounded span enclosing
// a match: a quoted attribute value or a balanced brace block. The engine
// uses the resolved span both to bound the rewrite and to evaluate the
// idempotency guard, so resolution is deliberately conservative: when no
// scope can be found the match is left untouched.
package scope

import (
	"errors"
	"strings"

	"github.com/oxhq/codemod/internal/model"
)

// Resolution outcomes. ErrNotFound is the quiet "do not transform this
// site" case; ErrUnterminated marks a malformed construct that should be
// surfaced as a per-file warning.
var (
	ErrNotFound     = errors.New("no enclosing scope")
	ErrUnterminated = errors.New("unterminated block")
)

// Resolve finds the scope enclosing content[matchStart:matchEnd] using
// the given strategy. attrToken is only consulted for ScopeAttribute.
func Resolve(content string, matchStart, matchEnd int, kind model.ScopeKind, attrToken string) (model.Scope, error) {
	switch kind {
	case model.ScopeAttribute:
		return resolveAttribute(content, matchStart, attrToken)
	case model.ScopeBlock:
		return resolveBlock(content, matchEnd)
	default:
		return model.Scope{}, ErrNotFound
	}
}

// resolveAttribute scans backward from the match for the nearest
// preceding attribute-name token, then forward for the opening quote and
// the matching closing quote. Either quote character is accepted, but
// the close must be the same character as the open.
func resolveAttribute(content string, matchStart int, attrToken string) (model.Scope, error) {
	attr := strings.LastIndex(content[:matchStart], attrToken)
	if attr < 0 {
		return model.Scope{}, ErrNotFound
	}

	open := -1
	for i := attr + len(attrToken); i < len(content); i++ {
		if content[i] == '"' || content[i] == '\'' {
			open = i
			break
		}
	}
	if open < 0 {
		return model.Scope{}, ErrNotFound
	}

	quote := content[open]
	close := strings.IndexByte(content[open+1:], quote)
	if close < 0 {
		return model.Scope{}, ErrNotFound
	}
	close += open + 1

	return model.Scope{
		Start: open + 1,
		End:   close,
		Text:  content[open+1 : close],
	}, nil
}

// resolveBlock scans forward from the match end for the first opening
// brace and depth-counts to its balanced close. Starting at the match
// end keeps braces inside the matched text from opening the scope
// early. Depth counting is the critical correctness property here: a
// block containing nested {...} pairs must resolve to the outer closing
// brace, never the first one seen.
func resolveBlock(content string, matchEnd int) (model.Scope, error) {
	open := matchEnd
	for open < len(content) && content[open] != '{' {
		open++
	}
	if open >= len(content) {
		return model.Scope{}, ErrNotFound
	}

	end, ok := BlockEnd(content, open)
	if !ok {
		return model.Scope{}, ErrUnterminated
	}

	return model.Scope{
		Start: open + 1,
		End:   end,
		Text:  content[open+1 : end],
	}, nil
}

// BlockEnd returns the offset of the closing brace balancing the opening
// brace at open. Escaped braces do not affect the depth. Returns false if
// the end of content is reached before the depth returns to zero.
func BlockEnd(content string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(content); i++ {
		if i > 0 && content[i-1] == '\\' {
			continue
		}
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// AlreadyApplied reports whether the scope already carries the rule's
// idempotency marker.
func AlreadyApplied(sc model.Scope, marker string) bool {
	return strings.Contains(sc.Text, marker)
}

// Package rules holds the concrete rule catalogues the CLI exposes. The
// engine itself is rule-agnostic; everything domain-specific about the
// two migrations lives here.
package rules

import (
	"github.com/oxhq/codemod/internal/engine"
	"github.com/oxhq/codemod/internal/model"
)

// Set is a named, ordered rule catalogue plus the file shapes it applies
// to and an optional import declaration ensured before the content rules.
type Set struct {
	Name        string
	Description string
	Include     []string // glob patterns for candidate files
	Rules       []model.Rule
	Import      *engine.ImportDecl
}

// Lookup resolves a rule set by name.
func Lookup(name string) (Set, bool) {
	switch name {
	case "darkmode":
		return DarkMode(), true
	case "errors":
		return ErrorMigration(), true
	}
	return Set{}, false
}

// Names lists the available rule set names.
func Names() []string {
	return []string{"darkmode", "errors"}
}

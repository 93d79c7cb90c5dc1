package rules

import (
	"regexp"

	"github.com/oxhq/codemod/internal/model"
)

// darkVariants maps light-mode color classes to their dark-mode variant.
// The replacement keeps the original class and appends the variant.
var darkVariants = []struct {
	class   string
	variant string
}{
	// Text colors
	{"text-gray-900", "dark:text-gray-100"},
	{"text-gray-800", "dark:text-gray-200"},
	{"text-gray-700", "dark:text-gray-300"},
	{"text-gray-600", "dark:text-gray-400"},
	{"text-black", "dark:text-white"},

	// Background colors
	{"bg-white", "dark:bg-gray-900"},
	{"bg-gray-50", "dark:bg-gray-950"},
	{"bg-gray-100", "dark:bg-gray-800"},
	{"bg-gray-200", "dark:bg-gray-700"},
	{"bg-gray-300", "dark:bg-gray-600"},
	{"bg-purple-100", "dark:bg-purple-900/20"},
	{"bg-indigo-100", "dark:bg-indigo-900/20"},

	// Border colors
	{"border-gray-200", "dark:border-gray-700"},
	{"border-gray-300", "dark:border-gray-600"},
	{"border-white", "dark:border-gray-700"},
}

// DarkMode builds the style-augmentation rule set: one attribute-scoped
// rule per color class, guarded by the "dark:" marker so class lists that
// already carry any dark variant are left alone.
func DarkMode() Set {
	rs := make([]model.Rule, 0, len(darkVariants))
	for _, v := range darkVariants {
		rs = append(rs, model.Rule{
			ID:        v.class,
			Pattern:   regexp.MustCompile(`\b` + regexp.QuoteMeta(v.class) + `\b`),
			Scope:     model.ScopeAttribute,
			AttrToken: "className",
			Marker:    "dark:",
			Replace:   model.StaticReplacement(v.class + " " + v.variant),
		})
	}
	return Set{
		Name:        "darkmode",
		Description: "add Tailwind dark-mode variants to color classes",
		Include:     []string{"**/*.tsx"},
		Rules:       rs,
	}
}

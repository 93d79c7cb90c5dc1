// Package boilerplate renders the marketing page scaffolding that used
// to be hand-maintained alongside the migrated sources. Pages are pure
// template output: one directory per slug, a page.tsx per page, written
// through the same Writer the rewrite engine uses so dry runs preview
// generation too.
package boilerplate

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/oxhq/codemod/internal/writer"
)

// Feature is one icon/title/description card on a generated page.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Page configures one generated marketing page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Keywords    string
	Gradient    string
	Features    []Feature
}

// ComponentName derives the exported React component name from a slug:
// "family-care" -> "FamilyCareBlogPage".
func ComponentName(slug string) string {
	var b strings.Builder
	for _, part := range strings.Split(slug, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	b.WriteString("BlogPage")
	return b.String()
}

// heroTitle strips the SEO suffix from a title for the page heading.
func heroTitle(title string) string {
	if _, after, found := strings.Cut(title, " - "); found {
		return after
	}
	return title
}

// icons lists the distinct feature icons of a page, for the import line.
func icons(features []Feature) string {
	seen := make(map[string]bool, len(features))
	var out []string
	for _, f := range features {
		if !seen[f.Icon] {
			seen[f.Icon] = true
			out = append(out, f.Icon)
		}
	}
	return strings.Join(out, ", ")
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"componentName": ComponentName,
	"heroTitle":     heroTitle,
	"icons":         icons,
}).Parse(`import type { Metadata } from 'next'
import Link from 'next/link'
import { {{icons .Features}} } from '@heroicons/react/24/outline'

export const metadata: Metadata = {
  title: '{{.Title}}',
  description: '{{.Description}}',
  keywords: '{{.Keywords}}',
  alternates: {
    canonical: 'https://weightlossproglab.com/blog/{{.Slug}}'
  }
}

export default function {{componentName .Slug}}() {
  return (
    <div className="min-h-screen bg-background">
      <div className="bg-gradient-to-br {{.Gradient}} text-white">
        <div className="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-24 text-center">
          <h1 className="text-5xl font-bold mb-6">{{heroTitle .Title}}</h1>
          <p className="text-xl text-white/90 mb-8">{{.Description}}</p>
          <Link href="/pricing" className="px-8 py-4 bg-white text-blue-600 rounded-lg font-semibold">
            Start Free Trial
          </Link>
        </div>
      </div>
      <main className="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16">
        <h2 className="text-4xl font-bold mb-12 text-center">Key Features</h2>
        <div className="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
{{- range .Features}}
          <div className="bg-card rounded-xl border-2 border-border p-6">
            <{{.Icon}} className="w-12 h-12 text-blue-600 mb-4" />
            <h3 className="text-xl font-semibold mb-2">{{.Title}}</h3>
            <p className="text-muted-foreground">{{.Description}}</p>
          </div>
{{- end}}
        </div>
      </main>
    </div>
  )
}
`))

// Render produces the page.tsx content for one page.
func Render(p Page) (string, error) {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("rendering page %s: %w", p.Slug, err)
	}
	return b.String(), nil
}

// Generate renders every page under outDir, one <slug>/page.tsx each,
// through w. Directory creation is left to the writer so a dry run
// leaves the filesystem completely untouched. Returns the number of
// pages written.
func Generate(outDir string, pages []Page, w writer.Writer) (int, error) {
	written := 0
	for _, p := range pages {
		content, err := Render(p)
		if err != nil {
			return written, err
		}
		if err := w.WriteFile(filepath.Join(outDir, p.Slug, "page.tsx"), []byte(content), 0o644); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

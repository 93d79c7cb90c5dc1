package runner

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/codemod/internal/model"
)

// printFileLine renders one per-file status line, plus any warnings and
// the diff when requested.
func (r *Runner) printFileLine(fr model.FileResult) {
	switch fr.Status {
	case model.StatusModified:
		fmt.Fprintf(r.out, "%s %s: %d modification(s)\n", color.GreenString("+"), fr.Path, fr.Modifications())
	case model.StatusFailed:
		fmt.Fprintf(r.out, "%s %s: %s\n", color.RedString("✗"), fr.Path, fr.Err)
	default:
		fmt.Fprintf(r.out, "  %s (no changes)\n", fr.Path)
	}
	for _, warn := range fr.Warnings {
		fmt.Fprintf(r.out, "    %s %s\n", color.YellowString("warning:"), warn)
	}
	if fr.Diff != "" {
		fmt.Fprint(r.out, fr.Diff)
	}
}

// printSummary renders the aggregated run summary block.
func (r *Runner) printSummary(s *model.RunSummary, cfg Config) {
	fmt.Fprintf(r.out, "\nSummary (%s)\n", cfg.Set.Name)
	fmt.Fprintf(r.out, "  Files scanned:       %d\n", s.FilesScanned)
	fmt.Fprintf(r.out, "  Files modified:      %d\n", s.FilesModified)
	fmt.Fprintf(r.out, "  Total modifications: %d\n", s.TotalModifications)

	if len(s.PerRule) > 0 {
		ids := make([]string, 0, len(s.PerRule))
		for id := range s.PerRule {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		table := tablewriter.NewWriter(r.out)
		table.SetHeader([]string{"Rule", "Applied"})
		table.SetBorder(false)
		for _, id := range ids {
			table.Append([]string{id, fmt.Sprintf("%d", s.PerRule[id])})
		}
		table.Render()
	}

	if len(s.Failures) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", color.RedString("Failures:"))
		for _, f := range s.Failures {
			fmt.Fprintf(r.out, "  %s: %s\n", f.Path, f.Reason)
		}
	}

	if cfg.DryRun {
		fmt.Fprintf(r.out, "\n%s\n", color.YellowString("DRY RUN: no files were written"))
	}
}

// unifiedDiff renders a unified diff between the original and modified
// content of one file.
func unifiedDiff(original, modified, path string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: path,
		ToFile:   path + " (modified)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}

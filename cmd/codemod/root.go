package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oxhq/codemod/internal/boilerplate"
	"github.com/oxhq/codemod/internal/model"
	"github.com/oxhq/codemod/internal/runner"
	"github.com/oxhq/codemod/internal/rules"
	"github.com/oxhq/codemod/internal/scanner"
	"github.com/oxhq/codemod/internal/writer"
)

type options struct {
	dryRun         bool
	showDiff       bool
	workers        int
	include        []string
	exclude        []string
	maxBytes       int64
	noGitignore    bool
	followSymlinks bool
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "codemod",
		Short:         "Rule-based, idempotent source-tree rewriting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; flags win over env defaults.
			_ = godotenv.Load()
			if !cmd.Flags().Changed("workers") {
				if n, err := strconv.Atoi(os.Getenv("CODEMOD_WORKERS")); err == nil && n > 0 {
					opts.workers = n
				}
			}
			if !cmd.Flags().Changed("exclude") {
				if v := os.Getenv("CODEMOD_EXCLUDE"); v != "" {
					opts.exclude = strings.Split(v, ",")
				}
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.dryRun, "dry-run", "d", false, "Compute and report changes without writing any files.")
	pf.BoolVarP(&opts.showDiff, "diff", "D", false, "Show a unified diff per modified file.")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "Number of concurrent workers, 0 means all available CPUs.")
	pf.StringSliceVar(&opts.include, "include", nil, "Include file patterns (glob), overriding the rule set default.")
	pf.StringSliceVar(&opts.exclude, "exclude", nil, "Exclude file patterns (glob).")
	pf.Int64Var(&opts.maxBytes, "max-bytes", 5*1024*1024, "Maximum file size to process.")
	pf.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering.")
	pf.BoolVar(&opts.followSymlinks, "follow-symlinks", false, "Follow symbolic links during traversal.")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging.")

	root.AddCommand(newRuleSetCmd(opts, "darkmode", []string{"app", "components"}))
	root.AddCommand(newRuleSetCmd(opts, "errors", []string{"app/api"}))
	root.AddCommand(newGenCmd(opts))
	return root
}

// newRuleSetCmd builds the subcommand for one named rule set. Positional
// arguments override the default scan roots.
func newRuleSetCmd(opts *options, name string, defaultRoots []string) *cobra.Command {
	set, ok := rules.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("unknown rule set %q", name))
	}

	return &cobra.Command{
		Use:   name + " [roots...]",
		Short: set.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if len(roots) == 0 {
				roots = existingRoots(defaultRoots)
			}

			r := runner.New(newLogger(opts), cmd.OutOrStdout())
			summary, err := r.Run(cmd.Context(), runner.Config{
				Roots:    roots,
				Set:      set,
				DryRun:   opts.dryRun,
				ShowDiff: opts.showDiff,
				Workers:  opts.workers,
				Scanner: scanner.Config{
					MaxBytes:       opts.maxBytes,
					FollowSymlinks: opts.followSymlinks,
					IncludeGlobs:   opts.include,
					ExcludeGlobs:   opts.exclude,
					NoGitignore:    opts.noGitignore,
				},
			})
			if err != nil {
				return err
			}
			if len(summary.Failures) > 0 {
				return model.ErrRunFailures
			}
			return nil
		},
	}
}

func newGenCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate marketing page boilerplate",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w writer.Writer
			if opts.dryRun {
				w = writer.NewDryRunWriter()
			} else {
				w = writer.NewAtomicWriter(writer.DefaultAtomicConfig())
			}

			n, err := boilerplate.Generate(outDir, boilerplate.Catalogue(), w)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d page(s)\n%s", n, w.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "app/blog", "Output directory for generated pages.")
	return cmd
}

// existingRoots filters the default roots down to those present, keeping
// runs from aborting just because a project lacks one of them.
func existingRoots(roots []string) []string {
	var out []string
	for _, r := range roots {
		if _, err := os.Stat(r); err == nil {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return roots
	}
	return out
}

func newLogger(opts *options) zerolog.Logger {
	level := zerolog.WarnLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// Package runner drives a whole run: discover candidate files, process
// each through the rewrite engine in a bounded worker pool, write back
// only on net change, and fold one result per file into the run summary.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oxhq/codemod/internal/engine"
	"github.com/oxhq/codemod/internal/model"
	"github.com/oxhq/codemod/internal/rules"
	"github.com/oxhq/codemod/internal/scanner"
	"github.com/oxhq/codemod/internal/writer"
)

// Config holds everything one run needs.
type Config struct {
	Roots    []string
	Set      rules.Set
	DryRun   bool
	ShowDiff bool
	Workers  int
	Scanner  scanner.Config
}

// Runner encapsulates the run execution logic.
type Runner struct {
	log zerolog.Logger
	out io.Writer
}

// New creates a runner that reports to out.
func New(log zerolog.Logger, out io.Writer) *Runner {
	return &Runner{log: log, out: out}
}

// Run executes the full walk-transform-report cycle and returns the
// aggregated summary. Per-file failures never abort the run; only
// configuration errors (no readable roots, empty rule set) do. On
// context cancellation the summary covers the files completed so far.
func (r *Runner) Run(ctx context.Context, cfg Config) (*model.RunSummary, error) {
	if len(cfg.Set.Rules) == 0 && cfg.Set.Import == nil {
		return nil, fmt.Errorf("%w: rule set %q has nothing to apply", model.ErrEmptyRuleSet, cfg.Set.Name)
	}
	if len(cfg.Roots) == 0 {
		return nil, fmt.Errorf("%w: no roots configured", model.ErrNoRoots)
	}

	summary := model.NewRunSummary()
	files, err := r.discover(ctx, cfg, summary)
	if err != nil {
		return nil, err
	}
	r.log.Debug().Int("files", len(files)).Str("set", cfg.Set.Name).Msg("discovery complete")

	var w writer.Writer
	if cfg.DryRun {
		w = writer.NewDryRunWriter()
	} else {
		w = writer.NewAtomicWriter(writer.DefaultAtomicConfig())
	}

	eng := engine.New(cfg.Set.Rules, cfg.Set.Import)

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// Single aggregator: workers own their file's buffers exclusively and
	// hand exactly one result over this channel.
	resCh := make(chan model.FileResult)
	done := make(chan struct{})
	var results []model.FileResult
	go func() {
		defer close(done)
		for fr := range resCh {
			results = append(results, fr)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			resCh <- r.processFile(f, eng, w, cfg)
			return nil
		})
	}
	runErr := g.Wait()
	close(resCh)
	<-done

	if runErr != nil && errors.Is(runErr, context.Canceled) {
		r.log.Warn().Msg("run interrupted, reporting partial summary")
	}

	// Deterministic reporting order regardless of worker scheduling.
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	for _, fr := range results {
		r.printFileLine(fr)
		summary.Fold(fr)
	}
	r.printSummary(summary, cfg)

	return summary, nil
}

// discover enumerates candidate files under every root. An unreadable
// root is recorded once as a failure; the run aborts only when no root
// was readable at all.
func (r *Runner) discover(ctx context.Context, cfg Config, summary *model.RunSummary) ([]string, error) {
	scanCfg := cfg.Scanner
	if len(scanCfg.IncludeGlobs) == 0 {
		scanCfg.IncludeGlobs = cfg.Set.Include
	}
	sc := scanner.New(scanCfg)

	var files []string
	readable := 0
	for _, root := range cfg.Roots {
		found, err := sc.ScanTargets(ctx, []string{root})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.log.Warn().Str("root", root).Err(err).Msg("skipping root")
			summary.Failures = append(summary.Failures, model.Failure{Path: root, Reason: err.Error()})
			continue
		}
		readable++
		files = append(files, found...)
	}
	if readable == 0 {
		return nil, fmt.Errorf("%w: none of %v could be scanned", model.ErrNoRoots, cfg.Roots)
	}

	// Roots may overlap; dedupe across them and re-sort.
	seen := make(map[string]bool, len(files))
	var out []string
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out, nil
}

// processFile runs the engine over one file and builds its result. All
// failures are caught here and downgraded to a failed result so a single
// malformed file never blocks the rest of the tree.
func (r *Runner) processFile(path string, eng *engine.Engine, w writer.Writer, cfg Config) model.FileResult {
	res := model.FileResult{Path: path, Status: model.StatusUnchanged, ByRule: map[string]int{}}

	info, err := os.Stat(path)
	if err != nil {
		res.Status = model.StatusFailed
		res.Err = fmt.Sprintf("stat: %v", err)
		res.ErrCode = model.ECReadError
		return res
	}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = model.StatusFailed
		res.Err = fmt.Sprintf("read: %v", err)
		res.ErrCode = model.ECReadError
		return res
	}

	original := string(data)
	modified, counts, warnings := eng.Apply(path, original)
	res.ByRule = counts
	res.Warnings = warnings

	// Write-back minimality: identical content is never rewritten, so
	// timestamps survive and diffs stay quiet.
	if modified == original {
		return res
	}

	res.Status = model.StatusModified
	if cfg.ShowDiff {
		res.Diff = unifiedDiff(original, modified, path)
	}

	if err := w.WriteFile(path, []byte(modified), info.Mode()); err != nil {
		res.Status = model.StatusFailed
		res.Err = fmt.Sprintf("write: %v", err)
		res.ErrCode = model.ECWriteError
		return res
	}

	r.log.Debug().Str("file", path).Int("modifications", res.Modifications()).Msg("rewrote file")
	return res
}

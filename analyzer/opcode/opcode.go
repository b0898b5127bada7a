// Package opcode implements the opcode frequency analysis run.
package opcode

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/luau-tools/opfreq/analyzer"
	"github.com/luau-tools/opfreq/compiler"
	"github.com/luau-tools/opfreq/extractor"
)

// Analyzer compiles each input file and accumulates opcode frequencies.
type Analyzer struct {
	compiler     compiler.Compiler
	jobs         int
	keepListings bool
}

type Option func(*Analyzer)

// WithJobs bounds the number of concurrent compiler invocations.
func WithJobs(n int) Option {
	return func(a *Analyzer) {
		a.jobs = n
	}
}

// WithListings retains each file's disassembly text on the report.
func WithListings() Option {
	return func(a *Analyzer) {
		a.keepListings = true
	}
}

func NewAnalyzer(comp compiler.Compiler, opts ...Option) *Analyzer {
	a := &Analyzer{compiler: comp, jobs: 1}
	for _, opt := range opts {
		opt(a)
	}
	if a.jobs < 1 {
		a.jobs = 1
	}
	return a
}

// Analyze runs the compiler over files and merges the per-file counts into
// an aggregate. Files are expected sorted and de-duplicated; the report's
// file order follows the input order regardless of completion order. A file
// that compiles to zero opcodes still counts as succeeded; only a compiler
// failure marks a file failed.
func (a *Analyzer) Analyze(ctx context.Context, files []string) (*analyzer.Report, error) {
	if len(files) == 0 {
		return nil, analyzer.ErrNoFiles
	}

	type outcome struct {
		result *analyzer.FileResult
		err    error
	}
	outcomes := make([]outcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.jobs)
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			text, err := a.compiler.Disassemble(groupCtx, path)
			if err != nil {
				outcomes[i] = outcome{err: err}
				return nil
			}
			result := &analyzer.FileResult{Path: path, Counts: extractor.Extract(text)}
			if a.keepListings {
				result.Disassembly = text
			}
			outcomes[i] = outcome{result: result}
			return nil
		})
	}
	// Per-file failures are tallied, never escalated; Wait is only a join point.
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &analyzer.Report{Aggregate: make(map[string]int)}
	for i, oc := range outcomes {
		if oc.err != nil {
			report.Failed++
			report.FailedPaths = append(report.FailedPaths, files[i])
			continue
		}
		report.Succeeded++
		analyzer.MergeCounts(report.Aggregate, oc.result.Counts)
		report.Files = append(report.Files, oc.result)
	}
	if report.Succeeded == 0 {
		return nil, fmt.Errorf("%w: all %d file(s) failed", analyzer.ErrAllFailed, report.Failed)
	}
	return report, nil
}

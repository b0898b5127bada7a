// Package analyzer defines the report types produced by a frequency analysis run.
package analyzer

import "errors"

var (
	// ErrNoFiles indicates discovery matched no source files.
	ErrNoFiles = errors.New("no source files matched the given patterns")
	// ErrAllFailed indicates every matched file failed to compile.
	ErrAllFailed = errors.New("no files compiled successfully")
)

// FileResult holds the extraction outcome for a single source file.
type FileResult struct {
	Path        string
	Counts      map[string]int
	Disassembly string // populated only when the run keeps listings
}

// Report is the terminal value of one analysis run.
type Report struct {
	Succeeded   int
	Failed      int
	FailedPaths []string
	Aggregate   map[string]int
	Files       []*FileResult // succeeded files, in input (sorted-path) order
}

// TotalOpcodes returns the sum of all aggregate counts.
func (r *Report) TotalOpcodes() int {
	total := 0
	for _, count := range r.Aggregate {
		total += count
	}
	return total
}

// PerFile returns the per-file counts keyed by file path.
func (r *Report) PerFile() map[string]map[string]int {
	perFile := make(map[string]map[string]int, len(r.Files))
	for _, file := range r.Files {
		perFile[file.Path] = file.Counts
	}
	return perFile
}

// MergeCounts adds each of addition's counts into aggregate, key-wise.
// A key absent from one side contributes zero.
func MergeCounts(aggregate, addition map[string]int) {
	for opcode, count := range addition {
		aggregate[opcode] += count
	}
}

// Package discovery expands file, directory, and glob patterns into the
// ordered list of source files to analyze.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/luau-tools/opfreq/profile"
)

// FindFiles resolves patterns into a sorted, de-duplicated list of file
// paths. Directories are walked recursively and glob patterns expanded; both
// keep only files whose extension the profile recognizes. A pattern naming a
// regular file directly is always kept, whatever its extension.
func FindFiles(patterns []string, prof *profile.ToolchainProfile) ([]string, error) {
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			walkErr := filepath.WalkDir(pattern, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !entry.IsDir() && prof.Recognizes(path) {
					seen[path] = true
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("error walking directory %s: %w", pattern, walkErr)
			}
		case err == nil && info.Mode().IsRegular():
			seen[pattern] = true
		default:
			matches, globErr := filepath.Glob(pattern)
			if globErr != nil {
				return nil, fmt.Errorf("invalid pattern %s: %w", pattern, globErr)
			}
			for _, match := range matches {
				matchInfo, statErr := os.Stat(match)
				if statErr == nil && matchInfo.Mode().IsRegular() && prof.Recognizes(match) {
					seen[match] = true
				}
			}
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)
	return files, nil
}

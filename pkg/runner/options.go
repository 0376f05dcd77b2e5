// Package runner measures many documents concurrently for the stats command.
package runner

import "github.com/yaklabco/mdpad/pkg/analysis"

// Options controls discovery and measurement.
type Options struct {
	// Paths are files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process directory.
	WorkingDir string

	// Extensions (lowercase, with leading dot) selects files inside
	// directories. Defaults to DefaultExtensions(). Files named explicitly
	// are always processed.
	Extensions []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs bounds concurrency. Zero or negative means runtime.NumCPU().
	Jobs int

	// WordsPerMinute is passed to analysis.Measure.
	WordsPerMinute int

	// MaxSize skips files larger than this many bytes. Zero means no limit.
	MaxSize int64
}

// DefaultExtensions returns the extensions picked up from directories.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) wordsPerMinute() int {
	if o.WordsPerMinute <= 0 {
		return analysis.DefaultWordsPerMinute
	}
	return o.WordsPerMinute
}

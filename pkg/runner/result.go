package runner

import "github.com/yaklabco/mdpad/pkg/analysis"

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesFailed     int
}

// Result is the outcome of a run. Files is ordered like the discovered
// paths and is ready for analysis.Summarize.
type Result struct {
	Files []analysis.FileStats
	Stats Stats
}

// HasFailures reports whether any file could not be measured.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

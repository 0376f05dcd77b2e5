package analysis

import "time"

// Report contains per-file statistics and their totals.
// Computed once by Summarize, used by all reporters.
type Report struct {
	// Files holds one entry per analyzed file, sorted per Options.
	Files []FileStats `json:"files"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FileStats is the measurement of a single file.
type FileStats struct {
	Path string `json:"path"`
	Stats

	// Error is set when the file could not be read; Stats are zero.
	Error string `json:"error,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files       int `json:"files"`
	Failed      int `json:"failed"`
	Words       int `json:"words"`
	Chars       int `json:"chars"`
	Lines       int `json:"lines"`
	Headings    int `json:"headings"`
	ReadingTime int `json:"readingTime"`
}

// HasFailures returns true if any file could not be analyzed.
func (t Totals) HasFailures() bool {
	return t.Failed > 0
}

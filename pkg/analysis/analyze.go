package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// Summarize aggregates per-file statistics into a Report. The input slice is
// not modified.
func Summarize(files []FileStats, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
		Files:     make([]FileStats, 0, len(files)),
	}

	for _, file := range files {
		file.Path = makeRelativePath(file.Path, opts.WorkingDir)
		report.Files = append(report.Files, file)

		report.Totals.Files++
		if file.Error != "" {
			report.Totals.Failed++
			continue
		}

		report.Totals.Words += file.Words
		report.Totals.Chars += file.Chars
		report.Totals.Lines += file.Lines
		report.Totals.Headings += file.Headings
	}

	report.Totals.ReadingTime = ReadingTimeAt(report.Totals.Words, opts.WordsPerMinute)
	sortFiles(report.Files, opts.SortBy, opts.SortDesc)

	return report
}

func sortFiles(files []FileStats, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileStats) int {
		var result int
		switch sortBy {
		case SortByWords:
			result = cmp.Compare(left.Words, right.Words)
		case SortByChars:
			result = cmp.Compare(left.Chars, right.Chars)
		default: // SortByPath
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		}
		if desc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(left.Path, right.Path)
		}
		return result
	})
}

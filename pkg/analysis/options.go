package analysis

// SortField specifies how to sort per-file results.
type SortField string

const (
	// SortByPath sorts alphabetically by path.
	SortByPath SortField = "path"
	// SortByWords sorts by word count (descending by default).
	SortByWords SortField = "words"
	// SortByChars sorts by character count (descending by default).
	SortByChars SortField = "chars"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByPath, SortByWords, SortByChars:
		return true
	default:
		return false
	}
}

// Options configures Summarize.
type Options struct {
	// SortBy specifies how to sort Files.
	SortBy SortField

	// SortDesc sorts counts in descending order (largest first).
	// Path sorting is always ascending.
	SortDesc bool

	// WordsPerMinute is the reading speed for the totals' reading time.
	WordsPerMinute int

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		SortBy:         SortByPath,
		SortDesc:       true,
		WordsPerMinute: DefaultWordsPerMinute,
	}
}

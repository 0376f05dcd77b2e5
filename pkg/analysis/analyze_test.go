package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileStats(path string, words, chars int) FileStats {
	return FileStats{
		Path:  path,
		Stats: Stats{Counts: Counts{Words: words, Chars: chars, Lines: 1}},
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	report := Summarize(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.Empty(t, report.Files)
	assert.Equal(t, Totals{}, report.Totals)
}

func TestSummarize_Totals(t *testing.T) {
	t.Parallel()

	files := []FileStats{
		fileStats("a.md", 150, 900),
		fileStats("b.md", 250, 1500),
		{Path: "broken.md", Error: "permission denied"},
	}

	report := Summarize(files, DefaultOptions())

	assert.Equal(t, 3, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.Failed)
	assert.True(t, report.Totals.HasFailures())
	assert.Equal(t, 400, report.Totals.Words)
	assert.Equal(t, 2400, report.Totals.Chars)
	assert.Equal(t, 2, report.Totals.Lines)
	assert.Equal(t, 2, report.Totals.ReadingTime)
}

func TestSummarize_Sorting(t *testing.T) {
	t.Parallel()

	files := []FileStats{
		fileStats("z.md", 10, 50),
		fileStats("a.md", 30, 40),
		fileStats("m.md", 20, 60),
	}

	tests := []struct {
		name   string
		sortBy SortField
		desc   bool
		want   []string
	}{
		{"path ignores desc", SortByPath, true, []string{"a.md", "m.md", "z.md"}},
		{"words descending", SortByWords, true, []string{"a.md", "m.md", "z.md"}},
		{"words ascending", SortByWords, false, []string{"z.md", "m.md", "a.md"}},
		{"chars descending", SortByChars, true, []string{"m.md", "z.md", "a.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.SortBy = tt.sortBy
			opts.SortDesc = tt.desc

			report := Summarize(files, opts)

			paths := make([]string, 0, len(report.Files))
			for _, f := range report.Files {
				paths = append(paths, f.Path)
			}
			assert.Equal(t, tt.want, paths)
		})
	}

	assert.Equal(t, "z.md", files[0].Path, "input must not be reordered")
}

func TestSummarize_RelativePaths(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Summarize([]FileStats{fileStats("/work/docs/readme.md", 1, 1)}, opts)

	require.Len(t, report.Files, 1)
	assert.Equal(t, "docs/readme.md", report.Files[0].Path)
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByPath.IsValid())
	assert.True(t, SortByWords.IsValid())
	assert.True(t, SortByChars.IsValid())
	assert.False(t, SortField("issues").IsValid())
}

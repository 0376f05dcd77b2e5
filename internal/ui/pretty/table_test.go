package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/analysis"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := analysis.Summarize([]analysis.FileStats{
		{Path: "a.md", Stats: analysis.Measure("# A\none two", 200)},
		{Path: "broken.md", Error: "permission denied"},
	}, analysis.DefaultOptions())

	out := NewTableFormatter(NewStyles(false), 100).FormatReport(report)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.True(t, strings.HasPrefix(lines[0], "FILE"))
	assert.Contains(t, lines[0], "HEADINGS")
	assert.True(t, strings.HasPrefix(lines[2], "a.md"))
	assert.Contains(t, lines[2], "< 1 min")
	assert.Contains(t, lines[3], "permission denied")
	assert.True(t, strings.HasPrefix(lines[5], "Total (2 files)"))

	assert.Empty(t, NewTableFormatter(NewStyles(false), 0).FormatReport(nil))
}

func TestFormatTotals(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	assert.Equal(t, "1 file, 12 words, < 1 min read\n",
		styles.FormatTotals(analysis.Totals{Files: 1, Words: 12}))
	assert.Equal(t, "3 files, 1,204,000 words, 6 min read (1 failed)\n",
		styles.FormatTotals(analysis.Totals{Files: 3, Failed: 1, Words: 1204000, ReadingTime: 6}))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdefgh", 5))
	assert.Equal(t, ".../c.md", truncateFilePath("aaa/bbb/c.md", 8))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "999", groupThousands(999))
}

package pretty_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/diff"
	"github.com/yaklabco/mdpad/pkg/search"
	"github.com/yaklabco/mdpad/pkg/toc"
)

func TestFormatStats(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatStats("notes.md", analysis.Measure("# Hi\n\none two three", 200))

	assert.Contains(t, out, "notes.md")
	assert.Contains(t, out, "Words:         5")
	assert.Contains(t, out, "Headings:      1")
	assert.Contains(t, out, "Reading time:  < 1 min")
}

func TestFormatReadingTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "< 1 min", pretty.FormatReadingTime(0))
	assert.Equal(t, "3 min", pretty.FormatReadingTime(3))
}

func TestFormatLastSaved(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "never", pretty.FormatLastSaved(time.Time{}))
	assert.NotEqual(t, "never", pretty.FormatLastSaved(time.Now()))
}

func TestFormatTOC(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	out := styles.FormatTOC(toc.Extract("## Intro\n### Details\n## Outro\n"))
	assert.Equal(t, "Intro #intro\n  Details #details\nOutro #outro\n", out)

	assert.Contains(t, styles.FormatTOC(nil), "No headings found")
}

func TestFormatMatches(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	text := "alpha\nBeta beta\n"

	out := styles.FormatMatches("doc.md", text, "beta", search.FindMatches(text, "beta"))
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "doc.md:2:1  [Beta] [beta]", lines[0])
	assert.Equal(t, "doc.md:2:6  [Beta] [beta]", lines[1])
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	out := styles.FormatDiff(diff.Compute("a.md", "x\n", "y\n"))
	assert.Contains(t, out, "-x\n+y\n")
	assert.Contains(t, out, "1 additions, 1 deletions")

	assert.Empty(t, styles.FormatDiff(nil))
}

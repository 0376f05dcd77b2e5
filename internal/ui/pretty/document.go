package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/diff"
	"github.com/yaklabco/mdpad/pkg/search"
	"github.com/yaklabco/mdpad/pkg/toc"
)

const summaryDividerWidth = 40

// FormatStats formats one document's statistics as a summary block.
func (s *Styles) FormatStats(title string, stats analysis.Stats) string {
	var b strings.Builder

	b.WriteString(s.SummaryTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&b, "  %-14s %s\n", label+":", s.SummaryValue.Render(value))
	}
	row("Words", strconv.Itoa(stats.Words))
	row("Characters", strconv.Itoa(stats.Chars))
	row("Lines", strconv.Itoa(stats.Lines))
	row("Headings", strconv.Itoa(stats.Headings))
	row("Reading time", FormatReadingTime(stats.ReadingTime))

	return b.String()
}

// FormatReadingTime renders whole minutes, with "< 1 min" for zero.
func FormatReadingTime(minutes int) string {
	if minutes <= 0 {
		return "< 1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatLastSaved renders a last-saved timestamp for status lines.
func FormatLastSaved(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.Kitchen)
}

// FormatTOC renders entries as an indented outline with anchors.
func (s *Styles) FormatTOC(entries []toc.Entry) string {
	if len(entries) == 0 {
		return s.Dim.Render("No headings found") + "\n"
	}

	minLevel := toc.MaxLevel
	for _, e := range entries {
		minLevel = min(minLevel, e.Level)
	}

	var b strings.Builder
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level-minLevel)
		fmt.Fprintf(&b, "%s%s %s\n", indent, s.Heading.Render(e.Text), s.Anchor.Render("#"+e.ID))
	}
	return b.String()
}

// FormatMatches renders each match as path:line:col followed by the line
// with the query highlighted.
func (s *Styles) FormatMatches(path, text, query string, matches []search.Match) string {
	lines := strings.Split(text, "\n")

	var b strings.Builder
	for _, m := range matches {
		line := ""
		if m.Line-1 < len(lines) {
			line = strings.TrimRight(lines[m.Line-1], "\r")
		}
		location := fmt.Sprintf("%d:%d", m.Line, m.Column)
		if path != "" {
			location = s.FilePath.Render(path) + ":" + location
		}
		highlighted := s.highlight(line, query)
		fmt.Fprintf(&b, "%s  %s\n", s.Location.Render(location), highlighted)
	}
	return b.String()
}

// highlight styles every occurrence of query in line. Plain styles
// bracket matches instead.
func (s *Styles) highlight(line, query string) string {
	if s.plain {
		return search.Highlight(line, query, "[", "]")
	}

	const marker = "\x00"
	marked := search.Highlight(line, query, marker, marker)
	parts := strings.Split(marked, marker)

	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(s.Match.Render(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// FormatDiff renders a unified diff with colored lines.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(d.String(), "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			b.WriteString(s.DiffHeader.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(s.DiffHunk.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(s.DiffAdd.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(s.DiffRemove.Render(body))
		default:
			b.WriteString(s.DiffContext.Render(body))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s, %s\n",
		s.DiffAdd.Render(fmt.Sprintf("%d additions", d.Additions)),
		s.DiffRemove.Render(fmt.Sprintf("%d deletions", d.Deletions)))
	return b.String()
}

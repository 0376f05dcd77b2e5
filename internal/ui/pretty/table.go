package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpad/pkg/analysis"
)

// Table formatting constants.
const (
	tablePadding     = 2
	numColumnWidth   = 8
	numColumnCount   = 5 // WORDS, CHARS, LINES, HEADINGS, READ
	minFileWidth     = 20
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableFormatter formats analysis reports as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatReport renders one row per file followed by a totals row.
func (t *TableFormatter) FormatReport(report *analysis.Report) string {
	if report == nil || len(report.Files) == 0 {
		return ""
	}

	fileWidth := minFileWidth
	for _, f := range report.Files {
		fileWidth = max(fileWidth, len(f.Path))
	}
	numsWidth := numColumnCount * (numColumnWidth + tablePadding)
	if fileWidth+tablePadding+numsWidth > t.termWidth {
		fileWidth = max(minFileWidth, t.termWidth-tablePadding-numsWidth)
	}
	total := fileWidth + tablePadding + numsWidth

	var b strings.Builder

	header := padRight("FILE", fileWidth+tablePadding)
	for _, name := range []string{"WORDS", "CHARS", "LINES", "HEADINGS", "READ"} {
		header += padLeft(name, numColumnWidth) + strings.Repeat(" ", tablePadding)
	}
	b.WriteString(t.styles.TableHeader.Render(strings.TrimRight(header, " ")))
	b.WriteString("\n")
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	b.WriteString("\n")

	for _, f := range report.Files {
		path := padRight(truncateFilePath(f.Path, fileWidth), fileWidth+tablePadding)
		if f.Error != "" {
			b.WriteString(t.styles.FilePath.Render(path))
			b.WriteString(t.styles.TableErrorRow.Render(truncateString(f.Error, numsWidth)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(t.styles.FilePath.Render(path))
		b.WriteString(numbers(f.Words, f.Chars, f.Lines, f.Headings, f.ReadingTime))
		b.WriteString("\n")
	}

	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
	b.WriteString("\n")

	totals := report.Totals
	b.WriteString(t.styles.Bold.Render(padRight(fmt.Sprintf("Total (%d files)", totals.Files), fileWidth+tablePadding)))
	b.WriteString(numbers(totals.Words, totals.Chars, totals.Lines, totals.Headings, totals.ReadingTime))
	b.WriteString("\n")

	return b.String()
}

// FormatTotals formats report totals as a single line.
// Example: "3 files, 1,204 words, 6 min read (1 failed)".
func (s *Styles) FormatTotals(totals analysis.Totals) string {
	fileWord := "files"
	if totals.Files == 1 {
		fileWord = "file"
	}

	line := fmt.Sprintf("%d %s, %s words, %s read",
		totals.Files, fileWord, groupThousands(totals.Words), FormatReadingTime(totals.ReadingTime))

	if totals.HasFailures() {
		return line + " " + s.Failure.Render(fmt.Sprintf("(%d failed)", totals.Failed)) + "\n"
	}
	return s.Success.Render(line) + "\n"
}

func numbers(values ...int) string {
	var b strings.Builder
	for i, v := range values {
		cell := strconv.Itoa(v)
		if i == len(values)-1 {
			cell = FormatReadingTime(v)
		}
		b.WriteString(padLeft(cell, numColumnWidth))
		if i < len(values)-1 {
			b.WriteString(strings.Repeat(" ", tablePadding))
		}
	}
	return b.String()
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// padRight pads s to width. Must be called before applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s to width. Must be called before applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath keeps the tail of a path, which carries the file name.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-(maxLen-3):]
}

// Package diff renders line-oriented unified diffs between two versions of a
// document. It backs the dry-run preview of imports and exports.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// LineKind indicates the type of a diff line.
type LineKind int

const (
	// Context is an unchanged line.
	Context LineKind = iota

	// Add is a line present only in the new version.
	Add

	// Remove is a line present only in the old version.
	Remove
)

// Line is a single line in a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	// OldStart and NewStart are 1-based line numbers.
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Diff is a unified diff between two versions of one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute diffs old against new. Returns nil when the contents are equal.
func Compute(path, oldText, newText string) *Diff {
	if oldText == newText {
		return nil
	}

	lines := lineOps(oldText, newText)
	hunks := group(lines)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, line := range lines {
		switch line.Kind {
		case Add:
			d.Additions++
		case Remove:
			d.Deletions++
		case Context:
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, line := range h.Lines {
			b.WriteByte(prefix(line.Kind))
			b.WriteString(line.Content)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func prefix(kind LineKind) byte {
	switch kind {
	case Add:
		return '+'
	case Remove:
		return '-'
	default:
		return ' '
	}
}

// lineOps runs a line-mode diff and flattens the result to one op per line.
func lineOps(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []Line
	for _, d := range diffs {
		kind := Context
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = Add
		case diffmatchpatch.DiffDelete:
			kind = Remove
		case diffmatchpatch.DiffEqual:
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Kind: kind, Content: text})
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// group collects lines into hunks. Changes separated by at most twice the
// context width share a hunk.
func group(lines []Line) []Hunk {
	type span struct{ start, end int }

	var spans []span
	for i, line := range lines {
		if line.Kind == Context {
			continue
		}
		s := span{max(0, i-contextLines), min(len(lines), i+contextLines+1)}
		if n := len(spans); n > 0 && s.start <= spans[n-1].end {
			spans[n-1].end = s.end
			continue
		}
		spans = append(spans, s)
	}

	hunks := make([]Hunk, 0, len(spans))
	oldLine, newLine, pos := 1, 1, 0
	for _, s := range spans {
		for ; pos < s.start; pos++ {
			oldLine, newLine = advance(lines[pos].Kind, oldLine, newLine)
		}

		h := Hunk{OldStart: oldLine, NewStart: newLine}
		for ; pos < s.end; pos++ {
			h.add(lines[pos])
			oldLine, newLine = advance(lines[pos].Kind, oldLine, newLine)
		}

		// An empty side points at the line before, as diff(1) does.
		if h.OldCount == 0 {
			h.OldStart--
		}
		if h.NewCount == 0 {
			h.NewStart--
		}
		hunks = append(hunks, h)
	}

	return hunks
}

func advance(kind LineKind, oldLine, newLine int) (int, int) {
	if kind != Add {
		oldLine++
	}
	if kind != Remove {
		newLine++
	}
	return oldLine, newLine
}

func (h *Hunk) add(line Line) {
	h.Lines = append(h.Lines, line)
	if line.Kind != Add {
		h.OldCount++
	}
	if line.Kind != Remove {
		h.NewCount++
	}
}

// Package shortcuts maps editor key chords to markdown snippets and applies
// them to a selection.
package shortcuts

import (
	"strings"
)

// Shortcut binds a key chord to a markdown snippet.
type Shortcut struct {
	// Key is the canonical chord, e.g. "ctrl+b".
	Key string

	// TerminalKey is the chord used inside a terminal, where many ctrl
	// combinations are reserved (ctrl+c, ctrl+h, ctrl+i, ...).
	TerminalKey string

	// Name describes the action for help screens.
	Name string

	// Snippet is inserted as-is, or wrapped around a selection.
	Snippet string
}

// Edit is the result of applying a shortcut.
type Edit struct {
	// Text is the full document after the edit.
	Text string

	// Cursor is the rune offset just past the inserted text.
	Cursor int
}

//nolint:gochecknoglobals // Read-only table
var table = []Shortcut{
	{Key: "ctrl+b", TerminalKey: "alt+b", Name: "bold", Snippet: "**"},
	{Key: "ctrl+i", TerminalKey: "alt+i", Name: "italic", Snippet: "_"},
	{Key: "ctrl+k", TerminalKey: "alt+k", Name: "link", Snippet: "[](url)"},
	{Key: "ctrl+h", TerminalKey: "alt+h", Name: "heading", Snippet: "# "},
	{Key: "ctrl+1", TerminalKey: "alt+1", Name: "heading 1", Snippet: "# "},
	{Key: "ctrl+2", TerminalKey: "alt+2", Name: "heading 2", Snippet: "## "},
	{Key: "ctrl+3", TerminalKey: "alt+3", Name: "heading 3", Snippet: "### "},
	{Key: "ctrl+l", TerminalKey: "alt+l", Name: "list item", Snippet: "- "},
	{Key: "ctrl+u", TerminalKey: "alt+u", Name: "bullet", Snippet: "* "},
	{Key: "ctrl+q", TerminalKey: "alt+q", Name: "quote", Snippet: "> "},
	{Key: "ctrl+c", TerminalKey: "alt+c", Name: "code block", Snippet: "```\n\n```"},
	{
		Key:         "ctrl+t",
		TerminalKey: "alt+t",
		Name:        "table",
		Snippet:     "| Column 1 | Column 2 |\n|-----------|------------|\n| Cell 1    | Cell 2    |",
	},
}

// All returns the shortcut table in display order.
func All() []Shortcut {
	out := make([]Shortcut, len(table))
	copy(out, table)
	return out
}

// Lookup finds a shortcut by canonical or terminal chord, ignoring case.
func Lookup(key string) (Shortcut, bool) {
	key = strings.ToLower(key)
	for _, sc := range table {
		if sc.Key == key || sc.TerminalKey == key {
			return sc, true
		}
	}
	return Shortcut{}, false
}

// Apply replaces the selection [start, end) of text with the shortcut's
// replacement. Offsets are rune indices and are clamped to the text.
func (s Shortcut) Apply(text string, start, end int) Edit {
	return Apply(text, start, end, s.Snippet)
}

// Replacement returns what snippet turns selection into. Without a selection
// the snippet is used as-is. A single-line snippet wraps the selection on
// both sides ("**sel**"); a multi-line snippet puts the selection on its own
// line between the snippet's first and last lines.
func Replacement(snippet, selection string) string {
	if selection == "" {
		return snippet
	}

	if !strings.Contains(snippet, "\n") {
		return snippet + selection + snippet
	}

	lines := strings.Split(snippet, "\n")
	return lines[0] + "\n" + selection + "\n" + lines[len(lines)-1]
}

// Apply substitutes the selection [start, end) of text with the replacement
// for snippet.
func Apply(text string, start, end int, snippet string) Edit {
	runes := []rune(text)
	if start > end {
		start, end = end, start
	}
	start = max(0, min(start, len(runes)))
	end = max(start, min(end, len(runes)))

	replacement := Replacement(snippet, string(runes[start:end]))

	var buf strings.Builder
	buf.Grow(len(text) + len(replacement))
	buf.WriteString(string(runes[:start]))
	buf.WriteString(replacement)
	buf.WriteString(string(runes[end:]))

	return Edit{
		Text:   buf.String(),
		Cursor: start + len([]rune(replacement)),
	}
}

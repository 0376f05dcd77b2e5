// Package toc extracts a table of contents from markdown text.
//
// Extraction is line oriented and purely textual: a line is a heading when it
// starts with one to six '#' characters followed by whitespace and some text.
// No inline rendering is performed, so emphasis markers and links stay in the
// heading text verbatim.
package toc

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLevel is the deepest heading level recognized.
const MaxLevel = 6

// headingPattern matches a single ATX heading line.
//
//nolint:gochecknoglobals // Compiled once, read-only
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Entry is one heading in document order.
type Entry struct {
	// Level is the number of leading '#' characters (1-6).
	Level int `json:"level"`

	// Text is the heading text with trailing whitespace trimmed.
	Text string `json:"text"`

	// ID is the anchor slug derived from Text.
	ID string `json:"id"`

	// Line is the 1-based source line of the heading.
	Line int `json:"line"`
}

// Options controls extraction.
type Options struct {
	// Dedupe appends -2, -3, ... to repeated IDs so every entry has a
	// distinct anchor. When false, identical headings share an ID.
	Dedupe bool
}

// DefaultOptions returns the options used by Extract.
func DefaultOptions() Options {
	return Options{Dedupe: true}
}

// Extract returns the headings of text in document order with unique IDs.
// A document without headings yields nil.
func Extract(text string) []Entry {
	return ExtractWithOptions(text, DefaultOptions())
}

// ExtractWithOptions returns the headings of text using opts.
func ExtractWithOptions(text string, opts Options) []Entry {
	if text == "" {
		return nil
	}

	var (
		entries []Entry
		ids     = NewAnchorMap()
	)

	for idx, line := range strings.Split(text, "\n") {
		level, heading, ok := ParseHeading(line)
		if !ok {
			continue
		}

		id := Slugify(heading)
		if opts.Dedupe {
			id = ids.Generate(heading)
		}

		entries = append(entries, Entry{
			Level: level,
			Text:  heading,
			ID:    id,
			Line:  idx + 1,
		})
	}

	return entries
}

// ParseHeading reports whether line is a heading and returns its level and
// trimmed text. A heading whose text is blank after trimming is rejected.
func ParseHeading(line string) (int, string, bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}

	match := headingPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, "", false
	}

	text := strings.TrimRightFunc(match[2], unicode.IsSpace)
	if text == "" {
		return 0, "", false
	}

	return len(match[1]), text, true
}

// Slugify lowercases text and replaces every maximal run of characters
// outside [A-Za-z0-9_] with a single hyphen. Leading and trailing hyphens are
// kept, so "Hello, World!" becomes "hello-world-".
func Slugify(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	inRun := false

	for _, ch := range strings.ToLower(text) {
		if isWordChar(ch) {
			buf.WriteRune(ch)
			inRun = false
			continue
		}
		if !inRun {
			_ = buf.WriteByte('-') // strings.Builder.WriteByte never fails
			inRun = true
		}
	}

	return buf.String()
}

func isWordChar(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// Markdown renders entries as a nested bullet list of anchor links, indented
// relative to the shallowest heading present.
func Markdown(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	minLevel := MaxLevel
	for _, entry := range entries {
		minLevel = min(minLevel, entry.Level)
	}

	var buf strings.Builder
	for _, entry := range entries {
		buf.WriteString(strings.Repeat("  ", entry.Level-minLevel))
		buf.WriteString("- [")
		buf.WriteString(entry.Text)
		buf.WriteString("](#")
		buf.WriteString(entry.ID)
		buf.WriteString(")\n")
	}

	return buf.String()
}

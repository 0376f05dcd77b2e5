// Package search implements literal, case-insensitive in-document search with
// wrap-around next/previous navigation.
//
// Queries are always matched as plain text; characters such as '.', '*' or
// '(' carry no pattern meaning. Case folding is simple per-rune lowercasing,
// so every offset is a rune (character) index into the original text.
package search

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one occurrence of the query.
type Match struct {
	// Offset is the zero-based rune index where the match starts.
	Offset int `json:"offset"`

	// Byte is the zero-based byte index where the match starts.
	Byte int `json:"byte"`

	// Line is the 1-based line of the match.
	Line int `json:"line"`

	// Column is the 1-based rune column of the match within Line.
	Column int `json:"column"`
}

// Find returns the rune offsets of every case-insensitive occurrence of query
// in text, in ascending order. Matches may overlap: "aa" occurs in "aaa" at 0
// and 1. An empty query matches nothing.
func Find(text, query string) []int {
	if query == "" || text == "" {
		return nil
	}

	hay := fold(text)
	needle := fold(query)
	if len(needle) > len(hay) {
		return nil
	}

	var offsets []int
	for idx := 0; idx+len(needle) <= len(hay); idx++ {
		if hay[idx] == needle[0] && slices.Equal(hay[idx:idx+len(needle)], needle) {
			offsets = append(offsets, idx)
		}
	}

	return offsets
}

// FindMatches is Find with byte offsets and line/column positions resolved.
func FindMatches(text, query string) []Match {
	return Locate(text, Find(text, query))
}

// Locate resolves ascending rune offsets in text into Matches.
func Locate(text string, offsets []int) []Match {
	if len(offsets) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(offsets))
	next := 0
	runeIdx := 0
	line, col := 1, 1

	for byteIdx, ch := range text {
		for next < len(offsets) && offsets[next] == runeIdx {
			matches = append(matches, Match{
				Offset: runeIdx,
				Byte:   byteIdx,
				Line:   line,
				Column: col,
			})
			next++
		}
		if next == len(offsets) {
			break
		}

		runeIdx++
		col++
		if ch == '\n' {
			line++
			col = 1
		}
	}

	return matches
}

// Highlight wraps every non-overlapping occurrence of query in text with open
// and closing markers, preserving the original casing of the matched text.
func Highlight(text, query, open, closing string) string {
	if query == "" || text == "" {
		return text
	}

	runes := []rune(text)
	hay := fold(text)
	needle := fold(query)

	var buf strings.Builder
	buf.Grow(len(text))

	for idx := 0; idx < len(runes); {
		if idx+len(needle) <= len(hay) && slices.Equal(hay[idx:idx+len(needle)], needle) {
			buf.WriteString(open)
			buf.WriteString(string(runes[idx : idx+len(needle)]))
			buf.WriteString(closing)
			idx += len(needle)
			continue
		}
		buf.WriteRune(runes[idx])
		idx++
	}

	return buf.String()
}

// fold lowercases text rune by rune. unicode.ToLower maps one rune to one
// rune, so indices into the result are rune indices into text.
func fold(text string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(text))
	for _, ch := range text {
		out = append(out, unicode.ToLower(ch))
	}
	return out
}

// Package analysis computes document statistics.
//
// Count and ReadingTime are pure functions of the text and are safe to call
// from any goroutine. Summarize aggregates per-file statistics into a Report
// for multi-file output.
package analysis

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdpad/pkg/toc"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = 200

// Counts holds the basic size measures of a document.
type Counts struct {
	// Words is the number of whitespace-delimited tokens.
	Words int `json:"words"`

	// Chars is the number of Unicode code points.
	Chars int `json:"chars"`

	// Lines is the number of lines; a trailing newline does not open a new one.
	Lines int `json:"lines"`
}

// Count measures text. Runs of whitespace collapse, so empty or
// all-whitespace text has zero words.
func Count(text string) Counts {
	return Counts{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
		Lines: countLines(text),
	}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	return lines
}

// ReadingTime returns the estimated reading time in whole minutes at the
// default speed. Short documents legitimately report zero.
func ReadingTime(words int) int {
	return ReadingTimeAt(words, DefaultWordsPerMinute)
}

// ReadingTimeAt returns words/wpm rounded half away from zero.
// A non-positive wpm falls back to DefaultWordsPerMinute.
func ReadingTimeAt(words, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	return int(math.Round(float64(words) / float64(wpm)))
}

// Stats is the full per-document measurement shown in status bars and
// reports.
type Stats struct {
	Counts

	// Headings is the number of table-of-contents entries.
	Headings int `json:"headings"`

	// ReadingTime is the estimated reading time in minutes.
	ReadingTime int `json:"readingTime"`
}

// Measure computes Stats for text at the given reading speed.
func Measure(text string, wpm int) Stats {
	counts := Count(text)
	return Stats{
		Counts:      counts,
		Headings:    len(toc.Extract(text)),
		ReadingTime: ReadingTimeAt(counts.Words, wpm),
	}
}

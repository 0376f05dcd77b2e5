// Package langdetect classifies files offered for import and picks fence
// tags for source code wrapped into a document. It is built on go-enry.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// classifierCandidates limits the Bayesian classifier to common languages.
//
//nolint:gochecknoglobals // Read-only table
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// pattern is a cheap, highly indicative content check.
type pattern struct {
	lang  string
	match func(content []byte, trimmed []byte) bool
}

//nolint:gochecknoglobals // Read-only table, checked in order
var patterns = []pattern{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", func(content, _ []byte) bool {
		return (bytes.Contains(content, []byte("def ")) && bytes.Contains(content, []byte("):"))) ||
			bytes.Contains(content, []byte("__main__"))
	}},
	{"html", func(_, trimmed []byte) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.Contains(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
	}},
	{"json", func(_, trimmed []byte) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(content, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(content, _ []byte) bool {
		return bytes.Contains(content, []byte("fn main()")) || bytes.Contains(content, []byte("println!"))
	}},
	{"javascript", func(content, _ []byte) bool {
		return bytes.Contains(content, []byte("=>")) || bytes.Contains(content, []byte("console.log"))
	}},
}

// Detect returns a fence tag for content, or Text when unsure.
// Shebangs win, then content patterns, then the enry classifier.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	for _, p := range patterns {
		if p.match(content, trimmed) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// DetectFile is Detect that consults the file name first, so "main.go" is Go
// regardless of what its first lines look like.
func DetectFile(filename string, content []byte) string {
	base := filepath.Base(filename)
	if lang, safe := enry.GetLanguageByFilename(base); safe && lang != "" {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(base); safe && lang != "" {
		return normalize(lang)
	}
	return Detect(content)
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

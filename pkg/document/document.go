// Package document holds the editor's text buffer together with the views
// derived from it.
//
// Every mutation recomputes counts and the table of contents and re-runs the
// active search, so readers always observe views consistent with the text.
// The buffer is guarded by a RWMutex; readers on other goroutines get copies.
package document

import (
	"slices"
	"strings"
	"sync"

	"github.com/yaklabco/mdpad/pkg/analysis"
	"github.com/yaklabco/mdpad/pkg/search"
	"github.com/yaklabco/mdpad/pkg/toc"
)

// Document is a mutable markdown buffer with eagerly maintained views.
type Document struct {
	mu sync.RWMutex

	text    string
	version uint64

	stats   analysis.Stats
	entries []toc.Entry
	index   search.Index

	tocOpts toc.Options
	wpm     int
}

// Option configures a Document.
type Option func(*Document)

// WithTOCOptions sets the table-of-contents extraction options.
func WithTOCOptions(opts toc.Options) Option {
	return func(d *Document) { d.tocOpts = opts }
}

// WithWordsPerMinute sets the reading speed for reading-time estimates.
func WithWordsPerMinute(wpm int) Option {
	return func(d *Document) { d.wpm = wpm }
}

// New creates a Document holding text.
func New(text string, opts ...Option) *Document {
	doc := &Document{
		tocOpts: toc.DefaultOptions(),
		wpm:     analysis.DefaultWordsPerMinute,
	}
	for _, opt := range opts {
		opt(doc)
	}
	doc.text = text
	doc.recompute()
	return doc
}

// recompute rebuilds every derived view. Callers hold the write lock.
func (d *Document) recompute() {
	counts := analysis.Count(d.text)
	d.entries = toc.ExtractWithOptions(d.text, d.tocOpts)
	d.stats = analysis.Stats{
		Counts:      counts,
		Headings:    len(d.entries),
		ReadingTime: analysis.ReadingTimeAt(counts.Words, d.wpm),
	}
	if d.index.Query() != "" {
		d.index.Refresh(d.text)
	}
}

// Text returns the current text.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// Version increases by one on every change to the text.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.version
}

// SetText replaces the whole text. Returns false if text is unchanged.
func (d *Document) SetText(text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if text == d.text {
		return false
	}
	d.text = text
	d.version++
	d.recompute()
	return true
}

// Append adds s at the end of the text.
func (d *Document) Append(s string) {
	if s == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.text += s
	d.version++
	d.recompute()
}

// Replace substitutes the runes in [start, end) with s. Offsets are clamped
// to the text.
func (d *Document) Replace(start, end int, s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runes := []rune(d.text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	var buf strings.Builder
	buf.Grow(len(d.text) + len(s))
	buf.WriteString(string(runes[:start]))
	buf.WriteString(s)
	buf.WriteString(string(runes[end:]))

	next := buf.String()
	if next == d.text {
		return
	}
	d.text = next
	d.version++
	d.recompute()
}

// Insert places s at rune offset.
func (d *Document) Insert(offset int, s string) {
	d.Replace(offset, offset, s)
}

// Stats returns the current counts and reading time.
func (d *Document) Stats() analysis.Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

// TOC returns a copy of the current table of contents.
func (d *Document) TOC() []toc.Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.entries)
}

// Search sets the active query and returns its matches. The cursor resets to
// no match; an empty query clears the search.
func (d *Document) Search(query string) []search.Match {
	d.mu.Lock()
	defer d.mu.Unlock()

	if query == "" {
		d.index.Reset()
		return nil
	}
	d.index.Update(d.text, query)
	return slices.Clone(d.index.Matches())
}

// Query returns the active search query.
func (d *Document) Query() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.Query()
}

// Matches returns a copy of the active search matches.
func (d *Document) Matches() []search.Match {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.index.Matches())
}

// NextMatch advances the search cursor with wrap-around.
func (d *Document) NextMatch() (search.Match, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index.Next()
}

// PrevMatch moves the search cursor back with wrap-around.
func (d *Document) PrevMatch() (search.Match, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index.Prev()
}

// CurrentMatch returns the match under the search cursor.
func (d *Document) CurrentMatch() (search.Match, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.Current()
}

// SearchStatus renders the cursor as "current/total".
func (d *Document) SearchStatus() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index.Status()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

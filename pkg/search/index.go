package search

import "fmt"

// Index holds the active query, its matches and the navigation cursor.
//
// The zero value is an empty index with no current match. Index is not safe
// for concurrent use; the owning document serializes access.
type Index struct {
	query   string
	matches []Match

	// pos is the current match index plus one, so the zero value means none.
	pos int
}

// Update runs query against text and resets the cursor to no match.
func (x *Index) Update(text, query string) {
	x.query = query
	x.matches = FindMatches(text, query)
	x.pos = 0
}

// Refresh re-runs the active query against changed text. The cursor resets
// because offsets from the previous text no longer apply.
func (x *Index) Refresh(text string) {
	x.Update(text, x.query)
}

// Reset clears the query and all matches.
func (x *Index) Reset() {
	x.query = ""
	x.matches = nil
	x.pos = 0
}

// Query returns the active query.
func (x *Index) Query() string {
	return x.query
}

// Len returns the number of matches.
func (x *Index) Len() int {
	return len(x.matches)
}

// Matches returns the matches in ascending offset order.
func (x *Index) Matches() []Match {
	return x.matches
}

// Offsets returns the rune offsets of all matches.
func (x *Index) Offsets() []int {
	if len(x.matches) == 0 {
		return nil
	}
	offsets := make([]int, len(x.matches))
	for idx, m := range x.matches {
		offsets[idx] = m.Offset
	}
	return offsets
}

// CurrentIndex returns the zero-based index of the current match, or -1.
func (x *Index) CurrentIndex() int {
	return x.pos - 1
}

// SetCurrent moves the cursor to idx. Out-of-range values clear it.
func (x *Index) SetCurrent(idx int) {
	if idx < 0 || idx >= len(x.matches) {
		x.pos = 0
		return
	}
	x.pos = idx + 1
}

// Current returns the current match.
func (x *Index) Current() (Match, bool) {
	if x.pos == 0 || x.pos > len(x.matches) {
		return Match{}, false
	}
	return x.matches[x.pos-1], true
}

// Next advances to the following match, wrapping past the last one to the
// first. From no match it selects the first. No-op without matches.
func (x *Index) Next() (Match, bool) {
	if len(x.matches) == 0 {
		return Match{}, false
	}
	cur := x.CurrentIndex()
	x.pos = (cur+1)%len(x.matches) + 1
	return x.Current()
}

// Prev moves to the preceding match, wrapping before the first one to the
// last. From no match it selects the last. No-op without matches.
func (x *Index) Prev() (Match, bool) {
	if len(x.matches) == 0 {
		return Match{}, false
	}
	cur := x.CurrentIndex()
	if cur <= 0 {
		x.pos = len(x.matches)
	} else {
		x.pos = cur
	}
	return x.Current()
}

// Status renders the cursor as "current/total", e.g. "2/5" or "0/0".
func (x *Index) Status() string {
	return fmt.Sprintf("%d/%d", x.pos, len(x.matches))
}

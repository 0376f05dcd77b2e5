package toc

import "strconv"

// AnchorMap hands out unique heading IDs.
//
// The first heading with a given slug keeps it unchanged. Later headings get
// -2, -3, ... appended, skipping any candidate already handed out (so a
// literal "Intro 2" heading never collides with a generated "intro-2").
type AnchorMap struct {
	used       map[string]bool
	seenCounts map[string]int
}

// NewAnchorMap creates an empty AnchorMap.
func NewAnchorMap() *AnchorMap {
	return &AnchorMap{
		used:       make(map[string]bool),
		seenCounts: make(map[string]int),
	}
}

// Generate slugifies text and returns an ID not yet handed out by m.
func (m *AnchorMap) Generate(text string) string {
	return m.Reserve(Slugify(text))
}

// Reserve returns base if it is free, otherwise the first free base-N for
// N >= 2. The returned ID is marked as used.
func (m *AnchorMap) Reserve(base string) string {
	if !m.used[base] {
		m.used[base] = true
		m.seenCounts[base] = 1
		return base
	}

	next := max(m.seenCounts[base]+1, 2)
	for {
		candidate := base + "-" + strconv.Itoa(next)
		if !m.used[candidate] {
			m.used[candidate] = true
			m.seenCounts[base] = next
			return candidate
		}
		next++
	}
}

// Has reports whether id has been handed out.
func (m *AnchorMap) Has(id string) bool {
	return m.used[id]
}

// Count returns the number of IDs handed out.
func (m *AnchorMap) Count() int {
	return len(m.used)
}

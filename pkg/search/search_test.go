package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/search"
)

func TestFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		query string
		want  []int
	}{
		{"overlapping", "aaa", "aa", []int{0, 1}},
		{"empty query", "abc", "", nil},
		{"empty text", "", "a", nil},
		{"case insensitive", "Hello World", "hello", []int{0}},
		{"upper query", "hello hello", "HELLO", []int{0, 6}},
		{"literal dot", "a.b aXb a.b", "a.b", []int{0, 8}},
		{"literal star", "a*b ab aab", "a*b", []int{0}},
		{"literal brackets", "[x] (y) [x]", "[x]", []int{0, 8}},
		{"literal backslash", `a\d 1`, `\d`, []int{1}},
		{"query longer than text", "ab", "abc", nil},
		{"no match", "markdown", "xyz", nil},
		{"rune offsets", "📝 note NOTE", "note", []int{2, 7}},
		{"accented folding", "Élan élan", "élan", []int{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, search.Find(tt.text, tt.query))
		})
	}
}

func TestFindMatches_Positions(t *testing.T) {
	t.Parallel()

	text := "# Title\nfind me\n📝 find"

	matches := search.FindMatches(text, "FIND")

	require.Len(t, matches, 2)
	assert.Equal(t, search.Match{Offset: 8, Byte: 8, Line: 2, Column: 1}, matches[0])
	assert.Equal(t, search.Match{Offset: 18, Byte: 21, Line: 3, Column: 3}, matches[1])
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"keeps casing", "Go go GO", "go", "[Go] [go] [GO]"},
		{"non-overlapping", "aaaa", "aa", "[aa][aa]"},
		{"metacharacters literal", "1+1 11", "1+1", "[1+1] 11"},
		{"empty query", "text", "", "text"},
		{"no match", "text", "zz", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, search.Highlight(tt.text, tt.query, "[", "]"))
		})
	}
}

func TestIndex_Navigation(t *testing.T) {
	t.Parallel()

	var idx search.Index
	idx.Update("x x x", "x")

	require.Equal(t, 3, idx.Len())
	assert.Equal(t, -1, idx.CurrentIndex())
	assert.Equal(t, "0/3", idx.Status())

	_, ok := idx.Current()
	assert.False(t, ok)

	match, ok := idx.Next()
	require.True(t, ok)
	assert.Equal(t, 0, match.Offset)

	idx.SetCurrent(2)
	match, _ = idx.Next()
	assert.Equal(t, 0, idx.CurrentIndex(), "next from last wraps to first")
	assert.Equal(t, 0, match.Offset)

	match, _ = idx.Prev()
	assert.Equal(t, 2, idx.CurrentIndex(), "prev from first wraps to last")
	assert.Equal(t, 4, match.Offset)
	assert.Equal(t, "3/3", idx.Status())

	idx.Prev()
	assert.Equal(t, 1, idx.CurrentIndex())
}

func TestIndex_PrevFromNone(t *testing.T) {
	t.Parallel()

	var idx search.Index
	idx.Update("ab ab", "ab")

	idx.Prev()
	assert.Equal(t, 1, idx.CurrentIndex())
}

func TestIndex_NoMatchesIsNoop(t *testing.T) {
	t.Parallel()

	var idx search.Index
	idx.Update("abc", "zz")

	_, ok := idx.Next()
	assert.False(t, ok)
	_, ok = idx.Prev()
	assert.False(t, ok)
	assert.Equal(t, -1, idx.CurrentIndex())
	assert.Equal(t, "0/0", idx.Status())
}

func TestIndex_RefreshResetsCursor(t *testing.T) {
	t.Parallel()

	var idx search.Index
	idx.Update("one two one", "one")
	idx.Next()
	idx.Next()
	require.Equal(t, 1, idx.CurrentIndex())

	idx.Refresh("one")

	assert.Equal(t, "one", idx.Query())
	assert.Equal(t, []int{0}, idx.Offsets())
	assert.Equal(t, -1, idx.CurrentIndex())

	idx.Update("one", "")
	assert.Zero(t, idx.Len())

	idx.Update("one", "one")
	idx.Reset()
	assert.Empty(t, idx.Query())
	assert.Nil(t, idx.Offsets())
}

func TestIndex_SetCurrentOutOfRange(t *testing.T) {
	t.Parallel()

	var idx search.Index
	idx.Update("aa", "a")
	idx.SetCurrent(1)
	require.Equal(t, 1, idx.CurrentIndex())

	idx.SetCurrent(5)
	assert.Equal(t, -1, idx.CurrentIndex())
}

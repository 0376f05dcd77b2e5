package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/diff"
)

func TestCompute_Identical(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diff.Compute("a.md", "same\n", "same\n"))
	assert.False(t, diff.Compute("a.md", "", "").HasChanges())
	assert.Empty(t, diff.Compute("a.md", "x", "x").String())
}

func TestCompute_SingleChange(t *testing.T) {
	t.Parallel()

	d := diff.Compute("doc.md", "# Title\nold line\nend\n", "# Title\nnew line\nend\n")
	require.NotNil(t, d)

	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)
	require.Len(t, d.Hunks, 1)

	want := "--- a/doc.md\n" +
		"+++ b/doc.md\n" +
		"@@ -1,3 +1,3 @@\n" +
		" # Title\n" +
		"-old line\n" +
		"+new line\n" +
		" end\n"
	assert.Equal(t, want, d.String())
}

func TestCompute_NewFile(t *testing.T) {
	t.Parallel()

	d := diff.Compute("new.md", "", "one\ntwo\n")
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1)

	h := d.Hunks[0]
	assert.Equal(t, 0, h.OldStart)
	assert.Equal(t, 0, h.OldCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 2, h.NewCount)
	assert.Equal(t, 2, d.Additions)
	assert.Zero(t, d.Deletions)
}

func TestCompute_DistantChangesSplitHunks(t *testing.T) {
	t.Parallel()

	oldText := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\n"
	newText := "A\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nL\n"

	d := diff.Compute("x.md", oldText, newText)
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 2)

	assert.Equal(t, 1, d.Hunks[0].OldStart)
	assert.Equal(t, 4, d.Hunks[0].OldCount)
	assert.Equal(t, 9, d.Hunks[1].OldStart)
	assert.Equal(t, 4, d.Hunks[1].OldCount)
}

func TestCompute_NearbyChangesMerge(t *testing.T) {
	t.Parallel()

	oldText := "a\nb\nc\nd\ne\nf\n"
	newText := "A\nb\nc\nd\ne\nF\n"

	d := diff.Compute("x.md", oldText, newText)
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1)
	assert.Equal(t, 6, d.Hunks[0].OldCount)
	assert.Equal(t, 6, d.Hunks[0].NewCount)
}

func TestString_TrimsLeadingSlash(t *testing.T) {
	t.Parallel()

	d := diff.Compute("/abs/doc.md", "a\n", "b\n")
	assert.Contains(t, d.String(), "--- a/abs/doc.md\n")
}

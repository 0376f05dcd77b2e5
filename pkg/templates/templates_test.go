package templates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/templates"
	"github.com/yaklabco/mdpad/pkg/toc"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	var slugs []string
	for _, tmpl := range templates.Catalog() {
		slugs = append(slugs, tmpl.Slug())
	}
	assert.Equal(t, []string{"blog-post", "documentation", "meeting-notes", "task-list"}, slugs)
}

func TestRender_DatePlaceholders(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	notes, err := templates.Render("Meeting Notes", now)
	require.NoError(t, err)
	assert.Contains(t, notes, "# Meeting Notes - 3/14/2026\n")

	blog, err := templates.Render("blog-post", now)
	require.NoError(t, err)
	assert.Contains(t, blog, "*Date:* 3/14/2026")
}

func TestRender_Unknown(t *testing.T) {
	t.Parallel()

	_, err := templates.Render("novel", time.Now())
	require.ErrorIs(t, err, templates.ErrUnknownTemplate)
}

func TestTemplates_HaveHeadings(t *testing.T) {
	t.Parallel()

	for _, tmpl := range templates.Catalog() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			t.Parallel()

			entries := toc.Extract(tmpl.Render(time.Now()))
			require.NotEmpty(t, entries)
			assert.Equal(t, 1, entries[0].Level)
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()

	tmpl, ok := templates.Lookup("  TASK LIST ")
	require.True(t, ok)
	assert.Equal(t, "Task List", tmpl.Name)
}

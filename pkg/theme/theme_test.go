package theme_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/theme"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	themes := theme.Catalog()
	require.Len(t, themes, 4)
	assert.Equal(t, theme.LightPastel, themes[0].ID)
	assert.Equal(t, themes[0], theme.Default())

	themes[0].Name = "mutated"
	assert.Equal(t, "Light Pastel", theme.Default().Name, "catalog is copied")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	byID, ok := theme.Lookup("mint-dream")
	require.True(t, ok)
	assert.Equal(t, "Mint Dream", byID.Name)

	byName, ok := theme.Lookup("soft lavender")
	require.True(t, ok)
	assert.Equal(t, theme.SoftLavender, byName.ID)

	_, ok = theme.Lookup("neon")
	assert.False(t, ok)

	assert.Equal(t, theme.Default(), theme.Get("neon"))
}

func TestID_Next(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.SoftLavender, theme.LightPastel.Next())
	assert.Equal(t, theme.LightPastel, theme.PeachCream.Next())
	assert.Equal(t, theme.LightPastel, theme.ID("unknown").Next())
}

func TestID_IsValid(t *testing.T) {
	t.Parallel()

	for _, id := range theme.IDs() {
		assert.True(t, id.IsValid(), id)
	}
	assert.False(t, theme.ID("Mint Dream").IsValid(), "display names are not IDs")
	assert.False(t, theme.ID("").IsValid())
}

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  theme.ID
	}{
		{"plain id", `"peach-cream"`, theme.PeachCream},
		{"legacy object", `{"name":"Mint Dream","className":"theme-mint-dream"}`, theme.MintDream},
		{"unknown legacy name kept", `{"name":"Retro"}`, theme.ID("Retro")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var id theme.ID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id theme.ID
	require.Error(t, json.Unmarshal([]byte(`42`), &id))
}

func TestViewMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.ViewWiki, theme.ViewBlog.Next())
	assert.Equal(t, theme.ViewBlog, theme.ViewPortfolio.Next())
	assert.Equal(t, theme.ViewBlog, theme.ViewMode("slides").Next())

	mode, ok := theme.ParseViewMode(" Portfolio ")
	assert.True(t, ok)
	assert.Equal(t, theme.ViewPortfolio, mode)

	_, ok = theme.ParseViewMode("slides")
	assert.False(t, ok)

	assert.Equal(t, "Wiki", theme.ViewWiki.Title())
	assert.Len(t, theme.ViewModes(), 3)
	assert.Greater(t, theme.ViewWiki.WrapWidth(), theme.ViewPortfolio.WrapWidth())
}

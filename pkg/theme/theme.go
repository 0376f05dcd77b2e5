// Package theme holds the editor's color themes and preview view modes.
package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ID identifies a theme in persisted state and configuration.
type ID string

// Built-in theme IDs in catalog order.
const (
	LightPastel  ID = "light-pastel"
	SoftLavender ID = "soft-lavender"
	MintDream    ID = "mint-dream"
	PeachCream   ID = "peach-cream"
)

// Theme is a named palette.
type Theme struct {
	ID         ID
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
}

//nolint:gochecknoglobals // Read-only catalog
var catalog = []Theme{
	{ID: LightPastel, Name: "Light Pastel", Background: "#f5f5f5", Foreground: "#1f2937", Accent: "#b5c9c3"},
	{ID: SoftLavender, Name: "Soft Lavender", Background: "#f3e5f5", Foreground: "#111827", Accent: "#ce93d8"},
	{ID: MintDream, Name: "Mint Dream", Background: "#e0f2f1", Foreground: "#111827", Accent: "#80cbc4"},
	{ID: PeachCream, Name: "Peach Cream", Background: "#fbe9e7", Foreground: "#111827", Accent: "#ffab91"},
}

// Catalog returns the built-in themes in display order.
func Catalog() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the IDs of the built-in themes in display order.
func IDs() []ID {
	ids := make([]ID, len(catalog))
	for idx, t := range catalog {
		ids[idx] = t.ID
	}
	return ids
}

// Default returns the first catalog entry.
func Default() Theme {
	return catalog[0]
}

// Lookup finds a theme by ID or, case-insensitively, by display name.
func Lookup(key string) (Theme, bool) {
	for _, t := range catalog {
		if string(t.ID) == key || strings.EqualFold(t.Name, key) {
			return t, true
		}
	}
	return Theme{}, false
}

// Get returns the theme for id, or Default when id is unknown.
func Get(id ID) Theme {
	if t, ok := Lookup(string(id)); ok {
		return t
	}
	return Default()
}

// IsValid reports whether id names a built-in theme.
func (id ID) IsValid() bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Next returns the theme after id, wrapping to the first.
func (id ID) Next() ID {
	for idx, t := range catalog {
		if t.ID == id {
			return catalog[(idx+1)%len(catalog)].ID
		}
	}
	return catalog[0].ID
}

// String returns the ID as stored.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts either an ID string or a legacy theme object such as
// {"name":"Mint Dream", ...}, resolving the latter by display name.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*id = ID(raw)
		return nil
	}

	var legacy struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("theme: expected string or object: %w", err)
	}

	t, ok := Lookup(legacy.Name)
	if !ok {
		*id = ID(legacy.Name)
		return nil
	}
	*id = t.ID
	return nil
}

// Package render turns markdown into HTML (for export) and into styled
// terminal output (for the live preview).
//
// HTML heading IDs are generated with the same slug rules as the table of
// contents, so TOC links resolve inside exported documents.
package render

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts markdown to another representation.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(markdown string) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(markdown string) (string, error) {
	return f(markdown)
}

// Options configures HTML rendering.
type Options struct {
	// Extensions lists goldmark extensions by name. Empty means the
	// defaults: gfm (tables, strikethrough, autolinks, task lists).
	Extensions []string

	// UnsafeHTML passes raw HTML in the document through to the output.
	UnsafeHTML bool

	// HardWraps renders soft line breaks as <br>.
	HardWraps bool

	// DedupeIDs suffixes repeated heading IDs with -2, -3, ...
	DedupeIDs bool

	// StripFrontMatter drops a leading YAML/TOML front matter block.
	StripFrontMatter bool
}

// DefaultOptions returns the options used by the editor preview.
func DefaultOptions() Options {
	return Options{
		UnsafeHTML:       true,
		DedupeIDs:        true,
		StripFrontMatter: true,
	}
}

//nolint:gochecknoglobals // Read-only registry
var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// ExtensionNames returns the recognized extension names.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	return names
}

// IsExtension reports whether name is a recognized extension.
func IsExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

// Package config defines core configuration types for mdpad.
// These types are pure data structures; resolution from files, environment
// and flags lives in internal/configloader.
package config

import "time"

// Storage backends for the persisted editor state.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Glamour styles for the terminal preview.
const (
	GlamourAuto  = "auto"
	GlamourDark  = "dark"
	GlamourLight = "light"
	GlamourNotty = "notty"
)

// Defaults.
const (
	DefaultTheme            = "light-pastel"
	DefaultViewMode         = "blog"
	DefaultAutosaveInterval = 30 * time.Second
	DefaultReadingSpeed     = 200
)

// TOCConfig controls table-of-contents extraction.
type TOCConfig struct {
	// Dedupe suffixes repeated anchors with -2, -3, ...
	Dedupe *bool `yaml:"dedupe,omitempty"`
}

// StorageConfig selects where the editor state is persisted.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend,omitempty"`

	// Path is the state directory (file) or database file (sqlite).
	// Empty means $XDG_STATE_HOME/mdpad.
	Path string `yaml:"path,omitempty"`
}

// ExportConfig controls exported artifacts.
type ExportConfig struct {
	// Dir is where artifacts are written when no output path is given.
	Dir string `yaml:"dir,omitempty"`

	// Backups copies an existing file to a sidecar before overwriting.
	Backups *bool `yaml:"backups,omitempty"`
}

// RenderConfig controls HTML and terminal rendering.
type RenderConfig struct {
	// Extensions lists goldmark extensions by name.
	Extensions []string `yaml:"extensions,omitempty"`

	// UnsafeHTML passes raw HTML through to exported HTML.
	UnsafeHTML *bool `yaml:"unsafe_html,omitempty"`

	// GlamourStyle is auto, dark, light, notty or a path to a style file.
	GlamourStyle string `yaml:"glamour_style,omitempty"`
}

// Config is the root configuration structure for mdpad.
type Config struct {
	// Theme is the initial theme ID for a fresh editor state.
	Theme string `yaml:"theme,omitempty"`

	// ViewMode is the initial view mode for a fresh editor state.
	ViewMode string `yaml:"view_mode,omitempty"`

	// AutosaveInterval is how often the editor flushes unsaved changes.
	AutosaveInterval time.Duration `yaml:"autosave_interval,omitempty"`

	// ReadingSpeed is words per minute for reading-time estimates.
	ReadingSpeed int `yaml:"reading_speed,omitempty"`

	TOC     TOCConfig     `yaml:"toc,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`
	Render  RenderConfig  `yaml:"render,omitempty"`

	// CLI-level options (not persisted to config files).

	// Color is "auto", "always" or "never".
	Color string `yaml:"-"`

	// Jobs bounds concurrency for multi-file commands.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with defaults for every field.
func NewConfig() *Config {
	return &Config{
		Theme:            DefaultTheme,
		ViewMode:         DefaultViewMode,
		AutosaveInterval: DefaultAutosaveInterval,
		ReadingSpeed:     DefaultReadingSpeed,
		TOC:              TOCConfig{Dedupe: Bool(true)},
		Storage:          StorageConfig{Backend: BackendFile},
		Export:           ExportConfig{Backups: Bool(true)},
		Render: RenderConfig{
			Extensions:   []string{"gfm"},
			UnsafeHTML:   Bool(true),
			GlamourStyle: GlamourAuto,
		},
		Color: "auto",
	}
}

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool {
	return &v
}

// boolOr dereferences p, or returns def when unset.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// DedupeAnchors reports whether TOC anchors are de-duplicated.
func (c *Config) DedupeAnchors() bool {
	return boolOr(c.TOC.Dedupe, true)
}

// ExportBackups reports whether exports back up existing files.
func (c *Config) ExportBackups() bool {
	return boolOr(c.Export.Backups, true)
}

// UnsafeHTML reports whether raw HTML passes through rendering.
func (c *Config) UnsafeHTML() bool {
	return boolOr(c.Render.UnsafeHTML, true)
}

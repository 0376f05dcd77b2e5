package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every field with its default value; otherwise fields are
	// commented out.
	Full bool

	// Themes and ViewModes list valid values for the comments.
	Themes    []string
	ViewModes []string
}

// GenerateTemplate creates a commented configuration file.
func GenerateTemplate(opts TemplateOptions) []byte {
	defaults := NewConfig()

	comment := "# "
	if opts.Full {
		comment = ""
	}

	var buf bytes.Buffer
	buf.WriteString("# mdpad configuration\n")
	buf.WriteString("# Precedence: flags > MDPAD_* env > --config > .mdpad.yml > user > system\n\n")

	field := func(doc, line string) {
		fmt.Fprintf(&buf, "# %s\n%s%s\n\n", doc, comment, line)
	}

	themeDoc := "Theme for new documents"
	if len(opts.Themes) > 0 {
		themeDoc += ": " + strings.Join(opts.Themes, ", ")
	}
	field(themeDoc, "theme: "+defaults.Theme)

	viewDoc := "View mode for new documents"
	if len(opts.ViewModes) > 0 {
		viewDoc += ": " + strings.Join(opts.ViewModes, ", ")
	}
	field(viewDoc, "view_mode: "+defaults.ViewMode)

	field("How often the editor saves unsaved changes", "autosave_interval: "+defaults.AutosaveInterval.String())
	field("Words per minute for reading time", fmt.Sprintf("reading_speed: %d", defaults.ReadingSpeed))

	block := func(doc, name string, lines ...string) {
		fmt.Fprintf(&buf, "# %s\n%s%s:\n", doc, comment, name)
		for _, l := range lines {
			fmt.Fprintf(&buf, "%s  %s\n", comment, l)
		}
		buf.WriteString("\n")
	}

	block("Table of contents: suffix repeated anchors with -2, -3", "toc", "dedupe: true")
	block("Where the editor state lives: file or sqlite; empty path uses $XDG_STATE_HOME/mdpad",
		"storage", "backend: "+defaults.Storage.Backend, `path: ""`)
	block("Export defaults", "export", `dir: ""`, "backups: true")
	block("Rendering: goldmark extensions, raw HTML, glamour style (auto, dark, light, notty or a file)",
		"render", "extensions: [gfm]", "unsafe_html: true", "glamour_style: "+defaults.Render.GlamourStyle)

	return bytes.TrimRight(buf.Bytes(), "\n")
}

package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Glamour style names accepted by TerminalOptions.Style. A path to a JSON
// style file works as well.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNotty = "notty"
)

// TerminalOptions configures terminal rendering.
type TerminalOptions struct {
	// Style is a glamour standard style name or "auto".
	Style string

	// Width wraps text at this many columns; zero disables wrapping.
	Width int
}

// Terminal renders markdown to ANSI-styled text with glamour.
type Terminal struct {
	renderer *glamour.TermRenderer
}

// NewTerminal builds a terminal renderer.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	termOpts := []glamour.TermRendererOption{
		glamour.WithWordWrap(max(opts.Width, 0)),
		glamour.WithEmoji(),
	}
	switch opts.Style {
	case "", StyleAuto:
		termOpts = append(termOpts, glamour.WithAutoStyle())
	default:
		termOpts = append(termOpts, glamour.WithStylePath(opts.Style))
	}

	renderer, err := glamour.NewTermRenderer(termOpts...)
	if err != nil {
		return nil, fmt.Errorf("terminal renderer: %w", err)
	}
	return &Terminal{renderer: renderer}, nil
}

// Render implements Renderer. Front matter is not shown in the preview.
func (t *Terminal) Render(markdown string) (string, error) {
	_, body, err := SplitFrontMatter([]byte(markdown))
	if err != nil {
		body = []byte(markdown)
	}

	out, err := t.renderer.Render(string(body))
	if err != nil {
		return "", fmt.Errorf("render terminal: %w", err)
	}
	return out, nil
}

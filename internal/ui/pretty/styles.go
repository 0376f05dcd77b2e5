// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/mdpad/pkg/theme"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Document components
	FilePath lipgloss.Style
	Heading  lipgloss.Style
	Anchor   lipgloss.Style
	Location lipgloss.Style
	Match    lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary and table styles
	SummaryTitle   lipgloss.Style
	SummaryValue   lipgloss.Style
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableErrorRow  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	plain bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(lipgloss.Color("13"))
}

// NewThemedStyles is NewStyles with headings and titles in the theme accent.
func NewThemedStyles(colorEnabled bool, th theme.Theme) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(th.Accent)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles(accent lipgloss.TerminalColor) *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Heading:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Anchor:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Match:    lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		SummaryValue:   lipgloss.NewStyle(),
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableErrorRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		Info:           plain,
		Success:        plain,
		Failure:        plain,
		FilePath:       plain,
		Heading:        plain,
		Anchor:         plain,
		Location:       plain,
		Match:          plain,
		DiffHeader:     plain,
		DiffHunk:       plain,
		DiffAdd:        plain,
		DiffRemove:     plain,
		DiffContext:    plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableErrorRow:  plain,
		Dim:            plain,
		Bold:           plain,
		plain:          true,
	}
}

// IsColorEnabled determines if color output should be used.
// Mode is "auto", "always" or "never".
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdpad/pkg/theme"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Theme supplies the accent color for titles.
	Theme theme.Theme

	// ShowSummary displays the totals line after per-file output.
	ShowSummary bool

	// Compact uses minified JSON.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		Theme:       theme.Default(),
		ShowSummary: true,
	}
}

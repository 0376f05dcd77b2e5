// Package export turns the working document into downloadable artifacts.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/render"
)

// BaseName is the stem of the default export filename.
const BaseName = "markdown-export"

// Format is an export format.
type Format string

const (
	// FormatMarkdown exports the raw document as markdown.
	FormatMarkdown Format = "markdown"
	// FormatText exports the raw document as plain text.
	FormatText Format = "txt"
	// FormatHTML exports the rendered preview fragment.
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned for an unrecognized format.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatText, FormatHTML}
}

// ParseFormat parses a format name. "md" and "text" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// MIMEType returns the declared content type.
func (f Format) MIMEType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown"
	case FormatText:
		return "text/plain"
	case FormatHTML:
		return "text/html"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	case FormatHTML:
		return ".html"
	default:
		return ""
	}
}

// Artifact is the export of one document.
type Artifact struct {
	Format   Format
	Content  string
	MIMEType string
	Filename string
}

// Build produces an artifact. Markdown and text never fail; HTML fails only
// when renderer does. A nil renderer for HTML uses render.NewHTML defaults.
func Build(text string, format Format, renderer render.Renderer) (*Artifact, error) {
	content := text

	switch format {
	case FormatMarkdown, FormatText:
	case FormatHTML:
		if renderer == nil {
			renderer = render.NewHTML(render.DefaultOptions())
		}
		html, err := renderer.Render(text)
		if err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		content = html
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Artifact{
		Format:   format,
		Content:  content,
		MIMEType: format.MIMEType(),
		Filename: BaseName + format.Extension(),
	}, nil
}

// WriteOptions controls WriteFile.
type WriteOptions struct {
	// Dir is used when path is empty or a directory. Empty means ".".
	Dir string

	// Backup copies an existing file to its sidecar before overwriting.
	Backup bool
}

// WriteFile writes the artifact atomically and returns the path written.
// An empty path writes the default filename into opts.Dir.
func (a *Artifact) WriteFile(ctx context.Context, path string, opts WriteOptions) (string, error) {
	target := resolvePath(path, a.Filename, opts.Dir)

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, target); err != nil {
			return "", fmt.Errorf("backup %s: %w", target, err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, target, []byte(a.Content), fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	return target, nil
}

func resolvePath(path, filename, dir string) string {
	if path == "" {
		if dir == "" {
			dir = "."
		}
		return filepath.Join(dir, filename)
	}
	if strings.HasSuffix(path, string(filepath.Separator)) || isDir(path) {
		return filepath.Join(path, filename)
	}
	return path
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// clipboardWrite is swapped in tests.
//
//nolint:gochecknoglobals // Test seam
var clipboardWrite = clipboard.WriteAll

// ErrClipboardUnavailable is returned when no clipboard utility is present.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// CopyToClipboard places the artifact content on the system clipboard.
func (a *Artifact) CopyToClipboard() error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboardWrite(a.Content); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

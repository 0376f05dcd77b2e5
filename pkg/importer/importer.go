// Package importer reads files from disk into editor content.
package importer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdpad/pkg/fsutil"
	"github.com/yaklabco/mdpad/pkg/langdetect"
)

// DefaultMaxSize bounds imported files.
const DefaultMaxSize int64 = 8 << 20

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotText indicates binary or non-UTF-8 content.
	ErrNotText = errors.New("file is not UTF-8 text")

	// ErrUnsupported indicates a file type the importer does not accept.
	ErrUnsupported = errors.New("unsupported file type")

	// ErrNotImage indicates ImageMarkdown was given non-image data.
	ErrNotImage = errors.New("not an image")
)

// Options controls Read.
type Options struct {
	// MaxSize is the largest accepted file in bytes. Zero means DefaultMaxSize.
	MaxSize int64

	// WrapCode accepts source files and wraps them in a fenced code block
	// tagged with the detected language.
	WrapCode bool
}

// Result is an imported file.
type Result struct {
	Path    string
	Content string
	Kind    langdetect.Kind
	Info    *fsutil.FileInfo
}

// Read loads path as editor content. Markdown and plain text files are
// returned verbatim. On error the caller keeps its current content.
func Read(ctx context.Context, path string, opts Options) (*Result, error) {
	limit := opts.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	data, info, err := fsutil.ReadFileLimit(ctx, path, limit)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	class := langdetect.Classify(path, data)

	switch class.Kind {
	case langdetect.KindMarkdown, langdetect.KindText:
		return &Result{Path: path, Content: string(data), Kind: class.Kind, Info: info}, nil
	case langdetect.KindCode:
		if !opts.WrapCode {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
		}
		return &Result{Path: path, Content: Fence(class.Language, string(data)), Kind: class.Kind, Info: info}, nil
	case langdetect.KindBinary:
		return nil, fmt.Errorf("%w: %s", ErrNotText, filepath.Base(path))
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupported, filepath.Base(path), class.Kind)
	}
}

// Fence wraps code in a fenced block. The fence grows past any backtick run
// inside the code.
func Fence(lang, code string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	if lang == langdetect.Text {
		lang = ""
	}
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	return fence + lang + "\n" + code + fence + "\n"
}

// ImageMarkdown returns an inline image with the data embedded as a base64
// data URI, surrounded by blank lines so it can be inserted at the cursor.
func ImageMarkdown(name string, data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		if strings.EqualFold(filepath.Ext(name), ".svg") && strings.Contains(string(data), "<svg") {
			mime = "image/svg+xml"
		} else {
			return "", fmt.Errorf("%w: %s (%s)", ErrNotImage, name, mime)
		}
	}

	return fmt.Sprintf("\n![%s](data:%s;base64,%s)\n", name, mime, base64.StdEncoding.EncodeToString(data)), nil
}

// ReadImage loads an image file and returns its ImageMarkdown.
func ReadImage(ctx context.Context, path string) (string, error) {
	data, _, err := fsutil.ReadFileLimit(ctx, path, DefaultMaxSize)
	if err != nil {
		return "", fmt.Errorf("import image: %w", err)
	}
	return ImageMarkdown(filepath.Base(path), data)
}

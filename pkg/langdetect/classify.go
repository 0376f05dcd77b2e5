package langdetect

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the coarse classification of a file offered for import.
type Kind string

const (
	// KindMarkdown is a markdown document.
	KindMarkdown Kind = "markdown"
	// KindText is plain prose text.
	KindText Kind = "text"
	// KindCode is source code or structured data.
	KindCode Kind = "code"
	// KindImage is a raster or vector image.
	KindImage Kind = "image"
	// KindBinary is anything that is not valid UTF-8 text.
	KindBinary Kind = "binary"
)

// Classification describes a file.
type Classification struct {
	Kind Kind

	// Language is the fence tag for KindCode, empty otherwise.
	Language string

	// MIMEType is the best guess at the content type.
	MIMEType string
}

// Classify inspects filename and content.
func Classify(filename string, content []byte) Classification {
	ext := strings.ToLower(filepath.Ext(filename))

	if enry.IsImage(filename) || ext == ".svg" {
		return Classification{Kind: KindImage, MIMEType: enry.GetMIMEType(filename, "")}
	}

	if enry.IsBinary(content) || !utf8.Valid(content) {
		return Classification{Kind: KindBinary, MIMEType: "application/octet-stream"}
	}

	switch ext {
	case ".md", ".markdown", ".mdown", ".mkd":
		return Classification{Kind: KindMarkdown, MIMEType: "text/markdown"}
	case ".txt", ".text", "":
		return Classification{Kind: KindText, MIMEType: "text/plain"}
	}

	lang, _ := enry.GetLanguageByExtension(filename)
	switch enry.GetLanguageType(lang) {
	case enry.Prose:
		if lang == "Markdown" {
			return Classification{Kind: KindMarkdown, MIMEType: "text/markdown"}
		}
		return Classification{Kind: KindText, MIMEType: "text/plain"}
	default:
		return Classification{
			Kind:     KindCode,
			Language: DetectFile(filename, content),
			MIMEType: enry.GetMIMEType(filename, lang),
		}
	}
}

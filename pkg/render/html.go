package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdpad/pkg/toc"
)

// HTML renders markdown to an HTML fragment with goldmark.
// It is safe for concurrent use.
type HTML struct {
	engine goldmark.Markdown
	opts   Options
}

// NewHTML builds an HTML renderer.
func NewHTML(opts Options) *HTML {
	rendererOptions := []renderer.Option{}
	if opts.UnsafeHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	return &HTML{engine: engine, opts: opts}
}

// Render implements Renderer.
func (h *HTML) Render(markdown string) (string, error) {
	src := []byte(markdown)
	entries := toc.ExtractWithOptions(markdown, toc.Options{Dedupe: h.opts.DedupeIDs})
	lineOffset := 0
	if h.opts.StripFrontMatter {
		// A leading thematic break that is not front matter renders as-is.
		if _, body, err := SplitFrontMatter(src); err == nil && len(body) != len(src) {
			if bytes.HasSuffix(src, body) {
				lineOffset = bytes.Count(src[:len(src)-len(body)], []byte("\n"))
			} else {
				entries = toc.ExtractWithOptions(string(body), toc.Options{Dedupe: h.opts.DedupeIDs})
			}
			src = body
		}
	}

	doc := h.engine.Parser().Parse(text.NewReader(src))
	h.assignHeadingIDs(doc, src, entries, lineOffset)

	var buf bytes.Buffer
	if err := h.engine.Renderer().Render(&buf, src, doc); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// assignHeadingIDs gives every heading that starts on the line of a TOC
// entry that entry's ID, so TOC links resolve even where goldmark and the
// line scanner disagree (closing '#' runs, '#' lines inside code blocks).
// Other headings, such as setext ones, get slugs that avoid every TOC ID.
func (h *HTML) assignHeadingIDs(doc ast.Node, src []byte, entries []toc.Entry, lineOffset int) {
	byLine := make(map[int]string, len(entries))
	anchors := toc.NewAnchorMap()
	for _, entry := range entries {
		byLine[entry.Line] = entry.ID
		anchors.Reserve(entry.ID)
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := node.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		lines := heading.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		line := bytes.Count(src[:lines.At(0).Start], []byte("\n")) + 1 + lineOffset
		id, found := byLine[line]
		if !found {
			var label bytes.Buffer
			for i := range lines.Len() {
				segment := lines.At(i)
				label.Write(bytes.TrimRight(segment.Value(src), " \t\r\n"))
			}
			id = toc.Slugify(label.String())
			if h.opts.DedupeIDs {
				id = anchors.Reserve(id)
			}
		}
		heading.SetAttributeString("id", []byte(id))
		return ast.WalkSkipChildren, nil
	})
}

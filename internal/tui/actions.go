package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/mdpad/pkg/export"
	"github.com/yaklabco/mdpad/pkg/importer"
	"github.com/yaklabco/mdpad/pkg/search"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/templates"
)

func (m *Model) openSearch() tea.Cmd {
	if !m.sess.State().ShowSearch {
		m.sess.Update((*state.EditorState).ToggleSearch)
	}
	m.setFocus(paneEditor)
	m.editor.Blur()
	m.layout()
	return m.search.Focus()
}

func (m *Model) closeSearch() {
	m.search.Blur()
	m.search.Reset()
	m.sess.Document().Search("")
	if m.sess.State().ShowSearch {
		m.sess.Update((*state.EditorState).ToggleSearch)
	}
	m.setFocus(paneEditor)
	m.layout()
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeSearch()
		return m, nil
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.NextMatch):
		m.nextMatch(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevMatch):
		m.nextMatch(false)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if query := m.search.Value(); query != before {
		m.sess.Document().Search(query)
	}
	return m, cmd
}

// nextMatch moves the search cursor and puts the editor caret on the match.
func (m *Model) nextMatch(forward bool) {
	doc := m.sess.Document()
	if doc.Query() == "" && m.search.Value() != "" {
		doc.Search(m.search.Value())
	}

	var (
		match search.Match
		ok    bool
	)
	if forward {
		match, ok = doc.NextMatch()
	} else {
		match, ok = doc.PrevMatch()
	}
	if !ok {
		if doc.Query() != "" {
			m.setNotice("No matches")
		}
		return
	}
	m.moveCaret(match.Line, match.Column)
}

// moveCaret places the editor caret at a 1-based line and column. The
// textarea moves by visual row, so the walk is bounded rather than counted.
func (m *Model) moveCaret(line, column int) {
	limit := m.editor.LineCount() + m.editor.Length()
	for i := 0; m.editor.Line() > 0 && i < limit; i++ {
		m.editor.CursorUp()
	}
	for i := 0; m.editor.Line() < line-1 && i < limit; i++ {
		m.editor.CursorDown()
	}
	m.editor.SetCursor(column - 1)
}

func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	m.promptKind = kind
	m.prompt.Reset()

	switch kind {
	case promptImport:
		m.prompt.Prompt = "Import: "
		m.prompt.Placeholder = "path to .md, .txt, source or image file"
	case promptExport:
		m.prompt.Prompt = "Export: "
		m.prompt.Placeholder = "markdown|txt|html [path]"
	case promptTemplate:
		m.prompt.Prompt = "Template: "
		names := make([]string, 0, len(templates.Catalog()))
		for _, t := range templates.Catalog() {
			names = append(names, t.Slug())
		}
		m.prompt.Placeholder = strings.Join(names, ", ")
	case promptNone:
	}

	m.editor.Blur()
	m.layout()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.promptKind = promptNone
	m.prompt.Blur()
	m.setFocus(m.focus)
	m.layout()
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		kind := m.promptKind
		input := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		return m, m.runPrompt(kind, input)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) runPrompt(kind promptKind, input string) tea.Cmd {
	if input == "" && kind != promptExport {
		return nil
	}

	switch kind {
	case promptImport:
		return m.importFile(input)
	case promptExport:
		m.exportDocument(input)
	case promptTemplate:
		m.applyTemplate(input)
	case promptNone:
	}
	return nil
}

// importFile replaces the document with a text file, or inserts an image at
// the caret. On failure the document is left untouched.
func (m *Model) importFile(path string) tea.Cmd {
	res, err := importer.Read(m.ctx, path, importer.Options{WrapCode: true})
	if err == nil {
		m.replaceContent(res.Content)
		m.setNotice("Imported " + filepath.Base(path))
		return nil
	}

	if !errors.Is(err, importer.ErrUnsupported) {
		m.logger.Warn("import failed", "path", path, "error", err)
		m.setError(err)
		return nil
	}

	img, imgErr := importer.ReadImage(m.ctx, path)
	if imgErr != nil {
		m.logger.Warn("import failed", "path", path, "error", err)
		m.setError(err)
		return nil
	}

	m.editor.InsertString(img)
	m.setNotice("Embedded " + filepath.Base(path))
	return m.syncEditor()
}

// exportDocument parses "format [path]" and writes the artifact.
func (m *Model) exportDocument(input string) {
	fields := strings.Fields(input)

	format := export.FormatMarkdown
	if len(fields) > 0 {
		parsed, err := export.ParseFormat(fields[0])
		if err != nil {
			m.setError(err)
			return
		}
		format = parsed
	}

	var path string
	if len(fields) > 1 {
		path = fields[1]
	}

	artifact, err := export.Build(m.sess.Document().Text(), format, m.opts.HTML)
	if err != nil {
		m.setError(err)
		return
	}

	written, err := artifact.WriteFile(m.ctx, path, export.WriteOptions{
		Dir:    m.opts.ExportDir,
		Backup: m.opts.ExportBackups,
	})
	if err != nil {
		m.logger.Error("export failed", "format", format, "error", err)
		m.setError(err)
		return
	}

	m.logger.Info("exported", "format", format, "path", written)
	m.setNotice("Exported " + written)
}

func (m *Model) applyTemplate(name string) {
	tpl, ok := templates.Lookup(name)
	if !ok {
		m.setError(fmt.Errorf("%w: %q", templates.ErrUnknownTemplate, name))
		return
	}
	m.replaceContent(tpl.Render(m.opts.Clock()))
	m.setNotice("Applied " + tpl.Name)
}

func (m *Model) copyToClipboard() {
	artifact, err := export.Build(m.sess.Document().Text(), export.FormatMarkdown, nil)
	if err == nil {
		err = artifact.CopyToClipboard()
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.setNotice("Copied to clipboard")
}

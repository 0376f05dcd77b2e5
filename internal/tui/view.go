package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdpad/internal/ui/pretty"
	"github.com/yaklabco/mdpad/pkg/render"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/theme"
)

const (
	mobileWidth    = 40
	maxTOCWidth    = 32
	minPaneWidth   = 10
	panePadding    = 2
	minBodyHeight  = 1
	focusMaxColumn = 90
)

// frame is the computed geometry of one screen.
type frame struct {
	header  bool
	status  bool
	helpBar bool

	tocWidth     int
	editorWidth  int
	previewWidth int
	bodyHeight   int
}

func (m *Model) computeFrame(st state.EditorState) frame {
	var f frame

	f.header = !st.IsZenMode && !st.IsFullscreen
	f.status = !st.IsZenMode
	f.helpBar = !st.IsZenMode && !st.IsFullscreen

	chrome := 0
	if f.header {
		chrome++
	}
	if f.status {
		chrome++
	}
	if st.ShowSearch {
		chrome++
	}
	if m.promptKind != promptNone {
		chrome++
	}
	if f.helpBar {
		chrome += lipgloss.Height(m.help.View(m.keys))
	}
	f.bodyHeight = max(minBodyHeight, m.height-chrome)

	width := m.width
	if st.ShowTOC && !st.IsZenMode && !st.FocusMode {
		f.tocWidth = min(maxTOCWidth, width/4)
		width -= f.tocWidth
	}

	switch {
	case st.IsZenMode || st.FocusMode:
		f.editorWidth = width
	case st.IsSplitView:
		f.previewWidth = width / 2
		if st.IsMobilePreview {
			f.previewWidth = min(f.previewWidth, mobileWidth)
		}
		f.editorWidth = width - f.previewWidth
	case m.focus == panePreview:
		f.previewWidth = width
		if st.IsMobilePreview {
			f.previewWidth = min(width, mobileWidth)
		}
	default:
		f.editorWidth = width
	}

	return f
}

// layout sizes the components for the current window and state.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	st := m.sess.State()
	f := m.computeFrame(st)

	editorWidth := f.editorWidth
	if st.FocusMode {
		editorWidth = min(editorWidth, focusMaxColumn)
	}
	m.editor.SetWidth(max(minPaneWidth, editorWidth-panePadding))
	m.editor.SetHeight(f.bodyHeight)

	m.preview.Width = max(minPaneWidth, f.previewWidth-panePadding)
	m.preview.Height = f.bodyHeight

	m.help.Width = m.width
	m.search.Width = max(minPaneWidth, m.width-len(m.search.Prompt)-panePadding)
	m.prompt.Width = max(minPaneWidth, m.width-len(m.prompt.Prompt)-panePadding)

	if f.previewWidth > 0 {
		wrap := min(m.preview.Width, st.ViewMode.WrapWidth())
		if wrap != m.rendererWidth {
			m.rendererWidth = wrap
			m.renderer = nil
		}
		m.renderPreview(m.renderer == nil)
	}
}

// renderPreview renders the document into the preview viewport. Unless
// force is set, an unchanged document is not rendered again.
func (m *Model) renderPreview(force bool) {
	doc := m.sess.Document()
	if !force && m.renderedAt == doc.Version() {
		return
	}

	if m.renderer == nil {
		renderer, err := render.NewTerminal(render.TerminalOptions{
			Style: m.opts.GlamourStyle,
			Width: m.rendererWidth,
		})
		if err != nil {
			m.renderErr = err
			m.preview.SetContent(err.Error())
			return
		}
		m.renderer = renderer
	}

	out, err := m.renderer.Render(doc.Text())
	if err != nil {
		m.logger.Warn("preview render failed", "error", err)
		m.renderErr = err
		m.preview.SetContent(doc.Text())
		return
	}

	m.renderErr = nil
	m.renderedAt = doc.Version()
	m.preview.SetContent(out)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	st := m.sess.State()
	f := m.computeFrame(st)
	th := theme.Get(st.Theme)

	var sections []string

	if f.header {
		sections = append(sections, m.headerView(st, th))
	}

	sections = append(sections, m.bodyView(st, f, th))

	if st.ShowSearch {
		sections = append(sections, m.searchView())
	}
	if m.promptKind != promptNone {
		sections = append(sections, m.prompt.View())
	}
	if f.status {
		sections = append(sections, m.statusView(th))
	}
	if f.helpBar {
		sections = append(sections, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) headerView(st state.EditorState, th theme.Theme) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Accent).Render("mdpad")
	meta := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("  %s · %s view", th.Name, st.ViewMode.Title()))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title + meta)
}

func (m *Model) bodyView(st state.EditorState, f frame, th theme.Theme) string {
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Accent)

	var columns []string

	if f.tocWidth > 0 {
		columns = append(columns, m.tocView(f.tocWidth, f.bodyHeight))
	}

	if f.editorWidth > 0 {
		editor := m.editor.View()
		if st.FocusMode {
			editor = lipgloss.PlaceHorizontal(f.editorWidth, lipgloss.Center, editor)
		} else if f.previewWidth > 0 {
			editor = border.BorderRight(true).BorderLeft(false).BorderTop(false).BorderBottom(false).
				Render(editor)
		}
		columns = append(columns, editor)
	}

	if f.previewWidth > 0 {
		preview := lipgloss.NewStyle().PaddingLeft(1).Render(m.preview.View())
		columns = append(columns, preview)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *Model) tocView(width, height int) string {
	entries := m.sess.Document().TOC()
	styles := pretty.NewStyles(true)

	var b strings.Builder
	b.WriteString(styles.Bold.Render("Contents"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styles.Dim.Render("No headings"))
	}

	minLevel := 0
	for _, e := range entries {
		if minLevel == 0 || e.Level < minLevel {
			minLevel = e.Level
		}
	}
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level-minLevel)
		b.WriteString(indent + e.Text + "\n")
	}

	return lipgloss.NewStyle().
		Width(width - 1).
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		PaddingRight(1).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) searchView() string {
	doc := m.sess.Document()
	status := ""
	if doc.Query() != "" {
		status = "  " + doc.SearchStatus()
	}
	return m.search.View() + lipgloss.NewStyle().Faint(true).Render(status)
}

func (m *Model) statusView(th theme.Theme) string {
	stats := m.sess.Document().Stats()

	parts := []string{
		fmt.Sprintf("%d words", stats.Words),
		fmt.Sprintf("%d chars", stats.Chars),
		pretty.FormatReadingTime(stats.ReadingTime) + " read",
		"saved " + pretty.FormatLastSaved(m.sess.LastSaved()),
	}
	if m.sess.Dirty() {
		parts = append(parts, "modified")
	}
	if doc := m.sess.Document(); doc.Query() != "" {
		parts = append(parts, "match "+doc.SearchStatus())
	}

	line := strings.Join(parts, " · ")
	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Bold(true)
		if m.noticeErr {
			noticeStyle = noticeStyle.Foreground(lipgloss.Color("9"))
		}
		line = noticeStyle.Render(m.notice) + "  " + line
	}

	return lipgloss.NewStyle().
		Width(m.width).
		MaxWidth(m.width).
		Foreground(th.Foreground).
		Background(th.Accent).
		Render(line)
}

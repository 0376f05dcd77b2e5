// Package tui is the interactive markdown editor: a textarea bound to a
// session, a glamour preview, search, and the state toggles that shape the
// layout.
//
// All mutations happen on the bubbletea event loop. Autosave is a tea.Tick
// message handled on the same loop, so it never races an edit.
package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdpad/pkg/render"
	"github.com/yaklabco/mdpad/pkg/session"
	"github.com/yaklabco/mdpad/pkg/state"
)

// renderDelay debounces preview rendering while typing.
const renderDelay = 150 * time.Millisecond

// Options configures the editor.
type Options struct {
	// Session is the document and state being edited. Required.
	Session *session.Session

	// Logger receives diagnostics. It must not write to the terminal.
	Logger *log.Logger

	// Clock fills template dates. Defaults to time.Now.
	Clock func() time.Time

	// AutosaveInterval is how often a dirty session is flushed.
	AutosaveInterval time.Duration

	// GlamourStyle selects the preview style (auto, dark, light, notty or a
	// style file).
	GlamourStyle string

	// HTML renders html exports. Nil uses render defaults.
	HTML render.Renderer

	// ExportDir receives exports given without a path.
	ExportDir string

	// ExportBackups keeps a sidecar copy of overwritten export files.
	ExportBackups bool

	// Notice is shown in the status bar at startup.
	Notice string
}

type pane int

const (
	paneEditor pane = iota
	panePreview
)

type promptKind int

const (
	promptNone promptKind = iota
	promptImport
	promptExport
	promptTemplate
)

type autosaveMsg struct{}

type renderMsg struct {
	version uint64
}

// Model is the bubbletea model of the editor.
type Model struct {
	//nolint:containedctx // I/O issued from Update needs the program context
	ctx    context.Context
	sess   *session.Session
	logger *log.Logger
	opts   Options

	keys    keyMap
	help    help.Model
	editor  textarea.Model
	preview viewport.Model
	search  textinput.Model
	prompt  textinput.Model

	promptKind promptKind
	focus      pane

	renderer      *render.Terminal
	rendererWidth int
	renderedAt    uint64
	renderErr     error

	width  int
	height int
	ready  bool

	// lastSynced is the editor value last exchanged with the session.
	lastSynced string

	notice    string
	noticeErr bool
}

// New builds the editor model for opts.Session.
func New(ctx context.Context, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = session.DefaultAutosaveInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.ShowLineNumbers = false
	editor.Prompt = ""
	editor.Placeholder = "Start typing your markdown here..."
	// alt+b, alt+u, alt+l and alt+c are formatting shortcuts here.
	editor.KeyMap.WordBackward.SetKeys("alt+left")
	editor.KeyMap.WordForward.SetKeys("alt+right")
	editor.KeyMap.UppercaseWordForward = key.NewBinding(key.WithDisabled())
	editor.KeyMap.LowercaseWordForward = key.NewBinding(key.WithDisabled())
	editor.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	editor.Focus()

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "text to find"
	search.CharLimit = 256

	prompt := textinput.New()
	prompt.CharLimit = 1024

	model := &Model{
		ctx:     ctx,
		sess:    opts.Session,
		logger:  opts.Logger,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		editor:  editor,
		preview: viewport.New(0, 0),
		search:  search,
		prompt:  prompt,
		notice:  opts.Notice,
	}

	model.loadEditor(opts.Session.Document().Text())
	model.updatePaneKeys()

	if query := model.sess.Document().Query(); query != "" {
		model.search.SetValue(query)
	}

	return model
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.autosaveTick())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case autosaveMsg:
		m.autosave()
		return m, m.autosaveTick()

	case renderMsg:
		if msg.version == m.sess.Document().Version() {
			m.renderPreview(true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, m.quit()
	}
	if m.promptKind != promptNone {
		return m.updatePrompt(msg)
	}
	if m.search.Focused() {
		return m.updateSearch(msg)
	}

	m.clearNotice()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.openSearch()
	case key.Matches(msg, m.keys.NextMatch):
		m.nextMatch(true)
		return m, nil
	case key.Matches(msg, m.keys.PrevMatch):
		m.nextMatch(false)
		return m, nil
	case key.Matches(msg, m.keys.SwitchPane):
		m.switchPane()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.mutate((*state.EditorState).CycleTheme)
		return m, nil
	case key.Matches(msg, m.keys.ViewMode):
		m.mutate((*state.EditorState).CycleViewMode)
		return m, nil
	case key.Matches(msg, m.keys.Split):
		m.mutate((*state.EditorState).ToggleSplitView)
		return m, nil
	case key.Matches(msg, m.keys.Zen):
		m.mutate((*state.EditorState).ToggleZenMode)
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.mutate((*state.EditorState).ToggleFocusMode)
		return m, nil
	case key.Matches(msg, m.keys.Mobile):
		m.mutate((*state.EditorState).ToggleMobilePreview)
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		m.mutate((*state.EditorState).ToggleFullscreen)
		return m, nil
	case key.Matches(msg, m.keys.TOC):
		m.mutate((*state.EditorState).ToggleTOC)
		return m, nil
	case key.Matches(msg, m.keys.Template):
		return m, m.openPrompt(promptTemplate)
	case key.Matches(msg, m.keys.Import):
		return m, m.openPrompt(promptImport)
	case key.Matches(msg, m.keys.Export):
		return m, m.openPrompt(promptExport)
	case key.Matches(msg, m.keys.Copy):
		m.copyToClipboard()
		return m, nil
	}

	if m.focus == paneEditor {
		// textarea ignores tab; it expands to spaces on insert.
		if msg.Type == tea.KeyTab {
			m.editor.InsertString("\t")
			return m, m.syncEditor()
		}
		if sc, ok := lookupShortcut(msg.String()); ok {
			m.editor.InsertString(sc.Apply("", 0, 0).Text)
			return m, m.syncEditor()
		}
	}

	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == panePreview {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	m.editor, cmd = m.editor.Update(msg)
	return m, tea.Batch(cmd, m.syncEditor())
}

// loadEditor shows text in the editor. The textarea expands tabs and splits
// on both \r and \n, so what it holds may differ from the document; the
// document keeps the original until the user actually edits.
func (m *Model) loadEditor(text string) {
	m.editor.SetValue(strings.ReplaceAll(text, "\r\n", "\n"))
	m.lastSynced = m.editor.Value()
}

// syncEditor pushes editor text into the session and schedules a preview
// render when the user changed it.
func (m *Model) syncEditor() tea.Cmd {
	value := m.editor.Value()
	if value == m.lastSynced {
		return nil
	}
	m.lastSynced = value

	doc := m.sess.Document()
	m.sess.SetContent(value)
	version := doc.Version()
	return tea.Tick(renderDelay, func(time.Time) tea.Msg {
		return renderMsg{version: version}
	})
}

// replaceContent swaps the whole document, as import and templates do.
func (m *Model) replaceContent(text string) {
	m.sess.SetContent(text)
	m.loadEditor(text)
	m.renderPreview(true)
}

// mutate applies a state change and re-lays the screen out.
func (m *Model) mutate(fn func(*state.EditorState)) {
	m.sess.Update(fn)
	m.updatePaneKeys()
	m.layout()
}

// updatePaneKeys enables tab as the pane switch only while a single pane is
// shown; otherwise tab reaches the editor.
func (m *Model) updatePaneKeys() {
	st := m.sess.State()
	single := !st.IsSplitView && !st.IsZenMode && !st.FocusMode
	m.keys.SwitchPane.SetEnabled(single)
	if !single && m.focus != paneEditor {
		m.setFocus(paneEditor)
	}
}

func (m *Model) switchPane() {
	if m.focus == paneEditor {
		m.setFocus(panePreview)
	} else {
		m.setFocus(paneEditor)
	}
	m.layout()
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	if p == paneEditor {
		m.editor.Focus()
		return
	}
	m.editor.Blur()
}

func (m *Model) autosaveTick() tea.Cmd {
	return tea.Tick(m.opts.AutosaveInterval, func(time.Time) tea.Msg {
		return autosaveMsg{}
	})
}

func (m *Model) autosave() {
	saved, err := m.sess.Flush(m.ctx)
	if err != nil {
		m.logger.Error("autosave failed", "error", err)
		m.setError(err)
		return
	}
	if saved {
		m.logger.Debug("autosaved")
	}
}

func (m *Model) save() {
	if err := m.sess.Save(m.ctx); err != nil {
		m.logger.Error("save failed", "error", err)
		m.setError(err)
		return
	}
	m.setNotice("Saved")
}

func (m *Model) quit() tea.Cmd {
	if _, err := m.sess.Flush(m.ctx); err != nil {
		m.logger.Error("final save failed", "error", err)
	}
	return tea.Quit
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeErr = false
}

func (m *Model) setError(err error) {
	m.notice = err.Error()
	m.noticeErr = true
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

// Notice returns the status message currently shown, if any.
func (m *Model) Notice() string {
	return m.notice
}

// Run starts the editor on the terminal and blocks until it exits. The
// session is flushed on the way out.
func Run(ctx context.Context, opts Options) error {
	model := New(ctx, opts)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, runErr := program.Run()

	if _, err := opts.Session.Flush(context.WithoutCancel(ctx)); err != nil {
		model.logger.Error("flush on exit failed", "error", err)
		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}

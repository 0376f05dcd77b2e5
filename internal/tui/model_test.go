package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/session"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/templates"
	"github.com/yaklabco/mdpad/pkg/theme"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, opts Options) (*Model, *state.Persister) {
	t.Helper()
	return newTestModelWithContent(t, opts, "")
}

// newTestModelWithContent opens the editor on a saved document. Empty content
// starts from the default state.
func newTestModelWithContent(t *testing.T, opts Options, content string) (*Model, *state.Persister) {
	t.Helper()

	ctx := context.Background()
	persister := state.NewPersister(state.NewMemoryStore(), state.WithClock(fixedClock))
	if content != "" {
		st := state.Default(fixedClock())
		st.Content = content
		require.NoError(t, persister.Save(ctx, &st))
	}
	opts.Session = session.Open(ctx, persister, nil)
	opts.Clock = fixedClock
	opts.GlamourStyle = "notty"

	model := New(ctx, opts)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model, persister
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestModel_TypingUpdatesSession(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	before := model.sess.Document().Stats().Words

	send(model, runes(" more words"))

	assert.True(t, model.sess.Dirty())
	assert.Equal(t, before+2, model.sess.Document().Stats().Words)
	assert.Equal(t, model.editor.Value(), model.sess.Document().Text())
}

func TestModel_CursorMovesKeepDocumentVerbatim(t *testing.T) {
	t.Parallel()

	content := "```go\nfunc f() {\n\treturn\n}\n```\r\nend"
	model, persister := newTestModelWithContent(t, Options{}, content)

	send(model, keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyUp), keyType(tea.KeyRight))

	assert.Equal(t, content, model.sess.Document().Text())
	assert.False(t, model.sess.Dirty())
	assert.Equal(t, 6, model.editor.LineCount(), "CRLF is one line break")

	send(model, keyType(tea.KeyCtrlC))
	st, err := persister.Inspect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, content, st.Content)
}

func TestModel_EditAfterVerbatimLoadSyncs(t *testing.T) {
	t.Parallel()

	model, _ := newTestModelWithContent(t, Options{}, "a\r\nb")

	send(model, runes("x"))

	assert.True(t, model.sess.Dirty())
	assert.Equal(t, model.editor.Value(), model.sess.Document().Text())
	assert.NotContains(t, model.sess.Document().Text(), "\r")
}

func TestModel_TabSwitchesPaneOnlyInSingleView(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	require.True(t, model.sess.State().IsSplitView)

	send(model, keyType(tea.KeyTab))
	assert.Equal(t, paneEditor, model.focus)
	assert.True(t, model.sess.Dirty(), "tab is typed into the editor")
	assert.Contains(t, model.sess.Document().Text(), "    ")

	send(model, keyType(tea.KeyF4))
	send(model, keyType(tea.KeyTab))
	assert.Equal(t, panePreview, model.focus)

	send(model, keyType(tea.KeyF4))
	assert.Equal(t, paneEditor, model.focus, "split view returns focus to the editor")
}

func TestModel_FormattingShortcut(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})

	send(model, alt('b'))

	assert.Contains(t, model.sess.Document().Text(), "**")
}

func TestModel_CanonicalCtrlChordIsNotAShortcut(t *testing.T) {
	t.Parallel()

	_, ok := lookupShortcut("ctrl+b")
	assert.False(t, ok)

	sc, ok := lookupShortcut("alt+t")
	require.True(t, ok)
	assert.Equal(t, "table", sc.Name)
}

func TestModel_StateToggles(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})

	send(model, keyType(tea.KeyF2), keyType(tea.KeyF3), keyType(tea.KeyF4), keyType(tea.KeyF9))

	st := model.sess.State()
	assert.Equal(t, theme.SoftLavender, st.Theme)
	assert.Equal(t, theme.ViewWiki, st.ViewMode)
	assert.False(t, st.IsSplitView)
	assert.True(t, st.ShowTOC)
	assert.True(t, model.sess.Dirty())
}

func TestModel_Search(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	doc := model.sess.Document()

	send(model, keyType(tea.KeyCtrlF))
	assert.True(t, model.sess.State().ShowSearch)
	assert.True(t, model.search.Focused())

	send(model, runes("markdown"))
	assert.Equal(t, "markdown", doc.Query())
	assert.Len(t, doc.Matches(), 2)

	send(model, keyType(tea.KeyEnter))
	assert.Equal(t, "1/2", doc.SearchStatus())

	send(model, keyType(tea.KeyEnter))
	assert.Equal(t, "2/2", doc.SearchStatus())

	send(model, keyType(tea.KeyCtrlP))
	assert.Equal(t, "1/2", doc.SearchStatus())

	send(model, keyType(tea.KeyEsc))
	assert.Empty(t, doc.Query())
	assert.False(t, model.sess.State().ShowSearch)
	assert.False(t, model.search.Focused())
}

func TestModel_AutosaveFlushesDirtySession(t *testing.T) {
	t.Parallel()

	model, persister := newTestModel(t, Options{AutosaveInterval: time.Minute})

	send(model, runes("!"))
	require.True(t, model.sess.Dirty())

	cmd := send(model, autosaveMsg{})
	assert.NotNil(t, cmd, "autosave reschedules itself")
	assert.False(t, model.sess.Dirty())

	stored, err := persister.Inspect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.sess.Document().Text(), stored.Content)
}

func TestModel_Save(t *testing.T) {
	t.Parallel()

	model, persister := newTestModel(t, Options{})

	send(model, keyType(tea.KeyCtrlS))

	assert.Equal(t, "Saved", model.Notice())
	_, err := persister.Inspect(context.Background())
	require.NoError(t, err)
}

func TestModel_ApplyTemplate(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})

	send(model, keyType(tea.KeyF10), runes("task-list"), keyType(tea.KeyEnter))

	want, err := templates.Render("task-list", fixedClock())
	require.NoError(t, err)
	assert.Equal(t, want, model.sess.Document().Text())
	assert.Equal(t, promptNone, model.promptKind)
}

func TestModel_UnknownTemplateKeepsDocument(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	before := model.sess.Document().Text()

	send(model, keyType(tea.KeyF10), runes("novel"), keyType(tea.KeyEnter))

	assert.Equal(t, before, model.sess.Document().Text())
	assert.True(t, model.noticeErr)
}

func TestModel_Import(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(notes, []byte("# Notes\n\nimported body\n"), 0o600))
	blob := filepath.Join(dir, "blob.md")
	require.NoError(t, os.WriteFile(blob, []byte{0x00, 0x01, 0xff, 0xfe, 0x00}, 0o600))

	t.Run("text file replaces document", func(t *testing.T) {
		t.Parallel()

		model, _ := newTestModel(t, Options{})
		send(model, keyType(tea.KeyCtrlO), runes(notes), keyType(tea.KeyEnter))

		assert.Equal(t, "# Notes\n\nimported body\n", model.sess.Document().Text())
		assert.Equal(t, "Imported notes.md", model.Notice())
	})

	t.Run("binary file leaves document unchanged", func(t *testing.T) {
		t.Parallel()

		model, _ := newTestModel(t, Options{})
		before := model.sess.Document().Text()
		send(model, keyType(tea.KeyCtrlO), runes(blob), keyType(tea.KeyEnter))

		assert.Equal(t, before, model.sess.Document().Text())
		assert.True(t, model.noticeErr)
	})
}

func TestModel_ExportHTML(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	out := filepath.Join(t.TempDir(), "page.html")

	send(model, keyType(tea.KeyCtrlE), runes("html "+out), keyType(tea.KeyEnter))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1")
	assert.Equal(t, "Exported "+out, model.Notice())
}

func TestModel_ExportDefaultsToExportDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	model, _ := newTestModel(t, Options{ExportDir: dir})

	send(model, keyType(tea.KeyCtrlE), keyType(tea.KeyEnter))

	assert.FileExists(t, filepath.Join(dir, "markdown-export.md"))
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})

	view := model.View()
	assert.Contains(t, view, "words")
	assert.Contains(t, view, "Light Pastel")

	send(model, keyType(tea.KeyF5))
	zen := model.View()
	assert.NotContains(t, zen, "words")
	assert.NotContains(t, zen, "Light Pastel")
}

func TestModel_Frame(t *testing.T) {
	t.Parallel()

	model, _ := newTestModel(t, Options{})
	st := state.Default(fixedClock())

	tests := []struct {
		name        string
		mutate      func(*state.EditorState)
		wantEditor  int
		wantPreview int
		wantTOC     int
	}{
		{name: "split", mutate: func(*state.EditorState) {}, wantEditor: 60, wantPreview: 60},
		{name: "mobile", mutate: (*state.EditorState).ToggleMobilePreview, wantEditor: 80, wantPreview: mobileWidth},
		{name: "single pane", mutate: (*state.EditorState).ToggleSplitView, wantEditor: 120},
		{name: "zen", mutate: (*state.EditorState).ToggleZenMode, wantEditor: 120},
		{name: "toc", mutate: (*state.EditorState).ToggleTOC, wantEditor: 45, wantPreview: 45, wantTOC: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := st
			tt.mutate(&s)
			f := model.computeFrame(s)

			assert.Equal(t, tt.wantEditor, f.editorWidth)
			assert.Equal(t, tt.wantPreview, f.previewWidth)
			assert.Equal(t, tt.wantTOC, f.tocWidth)
		})
	}
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	model, persister := newTestModel(t, Options{})
	send(model, runes("bye"))

	cmd := send(model, keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	stored, err := persister.Inspect(context.Background())
	require.NoError(t, err)
	assert.Contains(t, stored.Content, "bye")
}

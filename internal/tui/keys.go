package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/yaklabco/mdpad/pkg/shortcuts"
)

// keyMap holds the editor-level bindings. Formatting shortcuts are looked up
// in pkg/shortcuts by their terminal chord and are not listed here.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Save       key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	SwitchPane key.Binding

	Theme      key.Binding
	ViewMode   key.Binding
	Split      key.Binding
	Zen        key.Binding
	Focus      key.Binding
	Mobile     key.Binding
	Fullscreen key.Binding
	TOC        key.Binding

	Template key.Binding
	Import   key.Binding
	Export   key.Binding
	Copy     key.Binding

	Close key.Binding
	Enter key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Search:     key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		NextMatch:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next match")),
		PrevMatch:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev match")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "editor/preview")),

		Theme:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "theme")),
		ViewMode:   key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "view mode")),
		Split:      key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "split")),
		Zen:        key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "zen")),
		Focus:      key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "focus")),
		Mobile:     key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7", "mobile preview")),
		Fullscreen: key.NewBinding(key.WithKeys("f8"), key.WithHelp("f8", "fullscreen")),
		TOC:        key.NewBinding(key.WithKeys("f9"), key.WithHelp("f9", "contents")),

		Template: key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "template")),
		Import:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "import")),
		Export:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy markdown")),

		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Save, k.Search, k.SwitchPane, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Search, k.NextMatch, k.PrevMatch, k.SwitchPane},
		{k.Theme, k.ViewMode, k.Split, k.Zen, k.Focus},
		{k.Mobile, k.Fullscreen, k.TOC, k.Template},
		{k.Import, k.Export, k.Copy, k.Quit},
		formattingBindings(),
	}
}

// formattingBindings exposes the markdown shortcuts in the help view under
// their terminal chords.
func formattingBindings() []key.Binding {
	all := shortcuts.All()
	bindings := make([]key.Binding, 0, len(all))
	for _, sc := range all {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(sc.TerminalKey),
			key.WithHelp(sc.TerminalKey, sc.Name),
		))
	}
	return bindings
}

// lookupShortcut returns the formatting shortcut bound to a terminal chord.
// Canonical ctrl chords are ignored: the terminal reserves most of them.
func lookupShortcut(chord string) (shortcuts.Shortcut, bool) {
	sc, ok := shortcuts.Lookup(chord)
	if !ok || sc.TerminalKey != chord {
		return shortcuts.Shortcut{}, false
	}
	return sc, true
}

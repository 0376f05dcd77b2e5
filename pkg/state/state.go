// Package state defines the persisted editor state and the stores it is
// saved to.
//
// EditorState is serialized as a flat JSON record under a single key. A
// missing, corrupt or invalid record is never an error for callers: Persister
// falls back to Default and logs the anomaly.
package state

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/yaklabco/mdpad/pkg/theme"
)

// Key is the storage key the editor state lives under.
const Key = "markdownEditor"

// WelcomeContent is the document shown when no state has been saved yet.
const WelcomeContent = "# 📝 Welcome to the Enhanced Markdown Editor\n\nStart typing your markdown here..."

// EditorState is the snapshot of an editing session.
type EditorState struct {
	Content         string         `json:"content"`
	Theme           theme.ID       `json:"theme"`
	ViewMode        theme.ViewMode `json:"viewMode"`
	IsZenMode       bool           `json:"isZenMode"`
	IsSplitView     bool           `json:"isSplitView"`
	IsMobilePreview bool           `json:"isMobilePreview"`
	IsFullscreen    bool           `json:"isFullscreen"`
	ShowTOC         bool           `json:"showTOC"`
	ShowSearch      bool           `json:"showSearch"`
	FocusMode       bool           `json:"focusMode"`
	LastSaved       time.Time      `json:"lastSaved"`
}

// Default returns the state of a fresh session stamped with now.
func Default(now time.Time) EditorState {
	return EditorState{
		Content:     WelcomeContent,
		Theme:       theme.Default().ID,
		ViewMode:    theme.DefaultViewMode,
		IsSplitView: true,
		LastSaved:   now.UTC(),
	}
}

// Validate checks the enumerated fields. Content is free-form.
func (s EditorState) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Theme, validation.Required, validation.In(toAny(theme.IDs())...)),
		validation.Field(&s.ViewMode, validation.Required, validation.In(toAny(theme.ViewModes())...)),
	)
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for idx, v := range values {
		out[idx] = v
	}
	return out
}

// ToggleSplitView flips between split and single-pane layout.
func (s *EditorState) ToggleSplitView() { s.IsSplitView = !s.IsSplitView }

// ToggleMobilePreview flips the narrow preview.
func (s *EditorState) ToggleMobilePreview() { s.IsMobilePreview = !s.IsMobilePreview }

// ToggleZenMode flips distraction-free mode.
func (s *EditorState) ToggleZenMode() { s.IsZenMode = !s.IsZenMode }

// ToggleFullscreen flips fullscreen.
func (s *EditorState) ToggleFullscreen() { s.IsFullscreen = !s.IsFullscreen }

// ToggleTOC flips the table-of-contents panel.
func (s *EditorState) ToggleTOC() { s.ShowTOC = !s.ShowTOC }

// ToggleSearch flips the search bar.
func (s *EditorState) ToggleSearch() { s.ShowSearch = !s.ShowSearch }

// ToggleFocusMode flips focus mode.
func (s *EditorState) ToggleFocusMode() { s.FocusMode = !s.FocusMode }

// CycleTheme advances to the next catalog theme.
func (s *EditorState) CycleTheme() { s.Theme = s.Theme.Next() }

// CycleViewMode advances to the next view mode.
func (s *EditorState) CycleViewMode() { s.ViewMode = s.ViewMode.Next() }

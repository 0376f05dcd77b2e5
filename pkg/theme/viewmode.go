package theme

import "strings"

// ViewMode selects the preview layout profile.
type ViewMode string

// View modes in cycling order.
const (
	ViewBlog      ViewMode = "blog"
	ViewWiki      ViewMode = "wiki"
	ViewPortfolio ViewMode = "portfolio"
)

// DefaultViewMode is used for new and recovered state.
const DefaultViewMode = ViewBlog

//nolint:gochecknoglobals // Read-only table
var viewModes = []ViewMode{ViewBlog, ViewWiki, ViewPortfolio}

// ViewModes returns all view modes in cycling order.
func ViewModes() []ViewMode {
	out := make([]ViewMode, len(viewModes))
	copy(out, viewModes)
	return out
}

// ParseViewMode parses a view mode case-insensitively.
func ParseViewMode(s string) (ViewMode, bool) {
	mode := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	return mode, mode.IsValid()
}

// IsValid reports whether m is a known view mode.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewBlog, ViewWiki, ViewPortfolio:
		return true
	default:
		return false
	}
}

// Next returns the following view mode, wrapping around.
func (m ViewMode) Next() ViewMode {
	for idx, mode := range viewModes {
		if mode == m {
			return viewModes[(idx+1)%len(viewModes)]
		}
	}
	return DefaultViewMode
}

// Title returns the display name.
func (m ViewMode) Title() string {
	switch m {
	case ViewWiki:
		return "Wiki"
	case ViewPortfolio:
		return "Portfolio"
	default:
		return "Blog"
	}
}

// WrapWidth is the preferred preview text width for the mode.
func (m ViewMode) WrapWidth() int {
	switch m {
	case ViewWiki:
		return 100
	case ViewPortfolio:
		return 64
	default:
		return 80
	}
}

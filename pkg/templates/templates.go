// Package templates provides starter documents for common kinds of writing.
package templates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/mdpad/pkg/toc"
)

// DateLayout formats the date placeholders, e.g. 3/14/2026.
const DateLayout = "1/2/2006"

// ErrUnknownTemplate is returned by Render for names not in the catalog.
var ErrUnknownTemplate = errors.New("unknown template")

// Template is a named starter document.
type Template struct {
	// Name is the display name.
	Name string

	// body builds the document for the given formatted date.
	body func(date string) string
}

// Slug is the command-line friendly name, e.g. "meeting-notes".
func (t Template) Slug() string {
	return strings.Trim(toc.Slugify(t.Name), "-")
}

// Render builds the document using now for date placeholders.
func (t Template) Render(now time.Time) string {
	return t.body(now.Format(DateLayout))
}

//nolint:gochecknoglobals // Read-only catalog
var catalog = []Template{
	{Name: "Blog Post", body: blogPost},
	{Name: "Documentation", body: documentation},
	{Name: "Meeting Notes", body: meetingNotes},
	{Name: "Task List", body: taskList},
}

// Catalog returns the templates in display order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a template by display name or slug, ignoring case.
func Lookup(name string) (Template, bool) {
	name = strings.TrimSpace(name)
	for _, t := range catalog {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(t.Slug(), name) {
			return t, true
		}
	}
	return Template{}, false
}

// Render looks up name and renders it with now.
func Render(name string, now time.Time) (string, error) {
	t, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t.Render(now), nil
}

func blogPost(date string) string {
	return `# Title

## Introduction

## Main Content

### Section 1

### Section 2

## Conclusion

---
*Tags:* 
*Date:* ` + date
}

func documentation(string) string {
	return "# Project Name\n\n## Overview\n\n## Installation\n\n```bash\nnpm install\n```\n\n" +
		"## Usage\n\n## API Reference\n\n## Contributing\n\n## License"
}

func meetingNotes(date string) string {
	return `# Meeting Notes - ` + date + `

## Attendees

- 

## Agenda

1. 

## Discussion Points

## Action Items

- [ ] 
- [ ] 

## Next Steps`
}

func taskList(string) string {
	return `# Project Tasks

## To Do
- [ ] Task 1
- [ ] Task 2

## In Progress
- [ ] Task 3

## Done
- [x] Task 4`
}

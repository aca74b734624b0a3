// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/folio-tui/folio/internal/tui/styles"
)

// EmptyState represents an empty section with optional pointers.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "📭").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions point the reader somewhere useful.
	Suggestions []Suggestion
}

// Suggestion is a pointer with a short description.
type Suggestion struct {
	Target      string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range e.Suggestions {
			line := fmt.Sprintf("  %s", styleSet.Link.Render(s.Target))
			if s.Description != "" {
				line += styleSet.Muted.Render(fmt.Sprintf("  %s", s.Description))
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" See %s", e.Suggestions[0].Target)
	}
	return styleSet.Muted.Render(line)
}

// EmptyOpenSource is shown when the catalog lists no contributions. The
// profile link, when known, is offered instead.
func EmptyOpenSource(profileURL string) EmptyState {
	es := EmptyState{
		Icon:     "🌱",
		Title:    "Open source contributions coming soon",
		Subtitle: "Nothing published here yet.",
	}
	if profileURL != "" {
		es.Suggestions = []Suggestion{{Target: profileURL, Description: "browse public repositories"}}
	}
	return es
}

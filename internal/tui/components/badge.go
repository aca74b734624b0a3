package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/tui/styles"
)

// RenderBadge renders one skill tag.
func RenderBadge(styleSet styles.Styles, label string) string {
	return styleSet.Badge.Render(label)
}

// RenderBadges lays badges out left to right, wrapping at width. Every
// label produces exactly one badge.
func RenderBadges(styleSet styles.Styles, labels []string, width int) string {
	if len(labels) == 0 {
		return ""
	}
	var (
		rows    []string
		current []string
		used    int
	)
	for _, label := range labels {
		badge := RenderBadge(styleSet, label)
		w := lipgloss.Width(badge)
		if len(current) > 0 && width > 0 && used+1+w > width {
			rows = append(rows, strings.Join(current, " "))
			current, used = nil, 0
		}
		if len(current) > 0 {
			used++
		}
		current = append(current, badge)
		used += w
	}
	rows = append(rows, strings.Join(current, " "))
	return strings.Join(rows, "\n")
}

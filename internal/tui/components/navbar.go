package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/tui/styles"
)

// NarrowWidth is the column count below which the nav collapses into a menu.
const NarrowWidth = 80

// Navbar is the fixed top bar.
type Navbar struct {
	Brand    string
	Items    []models.NavItem
	Theme    models.Theme
	MenuOpen bool
	Narrow   bool
}

func themeIcon(t models.Theme) string {
	if t == models.ThemeLight {
		return "☀"
	}
	return "☾"
}

func navLink(styleSet styles.Styles, i int, item models.NavItem) string {
	return styleSet.NavKey.Render(fmt.Sprintf("%d", i+1)) + " " + styleSet.NavItem.Render(item.Label)
}

// RenderNavbar renders the bar and, on narrow layouts, the open menu below it.
func RenderNavbar(styleSet styles.Styles, nav Navbar, width int) string {
	brand := styleSet.Accent.Render(nav.Brand)
	toggle := styleSet.Muted.Render(themeIcon(nav.Theme) + " ctrl+t")

	var middle string
	if nav.Narrow {
		label := "☰ menu"
		if nav.MenuOpen {
			label = "✕ close"
		}
		middle = styleSet.NavKey.Render("tab") + " " + styleSet.NavItem.Render(label)
	} else {
		links := make([]string, 0, len(nav.Items))
		for i, item := range nav.Items {
			links = append(links, navLink(styleSet, i, item))
		}
		middle = strings.Join(links, "  ")
	}

	gap := width - lipgloss.Width(brand) - lipgloss.Width(middle) - lipgloss.Width(toggle)
	var bar string
	if gap >= 2 {
		left := gap / 2
		bar = brand + strings.Repeat(" ", left) + middle + strings.Repeat(" ", gap-left) + toggle
	} else {
		bar = brand + "  " + middle + "  " + toggle
	}

	lines := []string{bar, styleSet.Muted.Render(strings.Repeat("─", max(width, 1)))}
	if nav.Narrow && nav.MenuOpen {
		for i, item := range nav.Items {
			lines = append(lines, "  "+navLink(styleSet, i, item))
		}
		lines = append(lines, styleSet.Muted.Render(strings.Repeat("─", max(width, 1))))
	}
	return strings.Join(lines, "\n")
}

// RenderToast renders a centered notification box.
func RenderToast(styleSet styles.Styles, message string, width int) string {
	boxWidth := width - 4
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 10 {
		boxWidth = 10
	}
	box := styleSet.Toast.Copy().Width(boxWidth).Align(lipgloss.Center).Render(message)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}

// RenderLoading renders the loading screen around a spinner frame.
func RenderLoading(styleSet styles.Styles, spinner string, width, height int) string {
	content := spinner + " " + styleSet.Muted.Render("Loading portfolio...")
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

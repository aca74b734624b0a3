// Package styles turns palette tokens into lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/models"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme      Theme
	Page       lipgloss.Style
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	AccentSoft lipgloss.Style
	Link       lipgloss.Style
	Badge      lipgloss.Style
	Card       lipgloss.Style
	Panel      lipgloss.Style
	NavItem    lipgloss.Style
	NavKey     lipgloss.Style
	Toast      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Info       lipgloss.Style
}

// DefaultStyles builds styles for the default theme.
func DefaultStyles() Styles {
	return ForMode(models.DefaultTheme)
}

// ForMode builds styles for a display mode.
func ForMode(t models.Theme) Styles {
	return BuildStyles(ForTheme(t))
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens
	color := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	return Styles{
		Theme:      theme,
		Page:       lipgloss.NewStyle().Foreground(color(tokens.Text)),
		Title:      lipgloss.NewStyle().Foreground(color(tokens.Text)).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(color(tokens.Accent)).Bold(true).Underline(true),
		Text:       lipgloss.NewStyle().Foreground(color(tokens.Text)),
		Muted:      lipgloss.NewStyle().Foreground(color(tokens.TextMuted)),
		Accent:     lipgloss.NewStyle().Foreground(color(tokens.Accent)).Bold(true),
		AccentSoft: lipgloss.NewStyle().Foreground(color(tokens.AccentSoft)),
		Link:       lipgloss.NewStyle().Foreground(color(tokens.Link)).Underline(true),
		Badge:      lipgloss.NewStyle().Foreground(color(tokens.BadgeText)).Background(color(tokens.BadgeBg)).Padding(0, 1),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(color(tokens.Border)).Padding(0, 1),
		Panel:      lipgloss.NewStyle().Foreground(color(tokens.Text)).Background(color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(color(tokens.Border)),
		NavItem:    lipgloss.NewStyle().Foreground(color(tokens.Text)),
		NavKey:     lipgloss.NewStyle().Foreground(color(tokens.Accent)),
		Toast:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(color(tokens.Accent)).Foreground(color(tokens.Text)).Padding(0, 2),
		Success:    lipgloss.NewStyle().Foreground(color(tokens.Success)),
		Warning:    lipgloss.NewStyle().Foreground(color(tokens.Warning)),
		Info:       lipgloss.NewStyle().Foreground(color(tokens.Info)),
	}
}

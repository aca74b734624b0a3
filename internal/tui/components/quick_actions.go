package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "ctrl+t")
	Label   string // Display label (e.g., "Theme")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "1-6:Jump  tab:Menu  ctrl+t:Theme"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.NavKey.Copy().Bold(true)
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label)))
	}
	return strings.Join(parts, "  ")
}

// MaxLinkKeys is how many social links get an alt+digit shortcut.
const MaxLinkKeys = 9

// LinkKey is the shortcut that opens the i-th social link, or "" past
// MaxLinkKeys.
func LinkKey(i int) string {
	if i < 0 || i >= MaxLinkKeys {
		return ""
	}
	return fmt.Sprintf("alt+%d", i+1)
}

// PageQuickActions lists the shortcuts that apply in the current state.
func PageQuickActions(hasEmail bool, links int, toastVisible bool) []QuickAction {
	escLabel := "Quit"
	if toastVisible {
		escLabel = "Dismiss"
	}
	if links > MaxLinkKeys {
		links = MaxLinkKeys
	}
	linkKeys := LinkKey(0)
	if links > 1 {
		linkKeys = fmt.Sprintf("alt+1-%d", links)
	}
	return []QuickAction{
		{Key: "1-6", Label: "Jump", Enabled: true},
		{Key: "tab", Label: "Menu", Enabled: true},
		{Key: "ctrl+t", Label: "Theme", Enabled: true},
		{Key: "ctrl+y", Label: "Copy email", Enabled: hasEmail},
		{Key: linkKeys, Label: "Open link", Enabled: links > 0},
		{Key: "↑/↓", Label: "Scroll", Enabled: true},
		{Key: "esc", Label: escLabel, Enabled: true},
	}
}

// RenderFooter renders the shortcut bar centered in width.
func RenderFooter(styleSet styles.Styles, actions []QuickAction, width int) string {
	bar := RenderQuickActionBar(styleSet, actions)
	if bar == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(styleSet.Theme.Tokens.TextMuted)).
		Width(width).
		Align(lipgloss.Center).
		Render(bar)
}

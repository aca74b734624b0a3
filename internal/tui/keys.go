package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/folio-tui/folio/internal/tui/components"
)

type keyMap struct {
	Navigate  key.Binding
	Menu      key.Binding
	Theme     key.Binding
	CopyEmail key.Binding
	OpenLink  key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Escape    key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump to section")),
		Menu:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle menu")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle theme")),
		CopyEmail: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy email")),
		OpenLink:  key.NewBinding(key.WithKeys(linkKeys()...), key.WithHelp("alt+1-9", "open link")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Top:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss or quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// navIndex maps a digit key to a nav item index.
func navIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

func linkKeys() []string {
	keys := make([]string, 0, components.MaxLinkKeys)
	for i := 0; i < components.MaxLinkKeys; i++ {
		keys = append(keys, components.LinkKey(i))
	}
	return keys
}

// linkIndex maps an alt+digit key to a social link index.
func linkIndex(k string) (int, bool) {
	digit, ok := strings.CutPrefix(k, "alt+")
	if !ok {
		return 0, false
	}
	return navIndex(digit)
}

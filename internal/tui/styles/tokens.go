package styles

import "github.com/folio-tui/folio/internal/models"

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	AccentSoft string
	BadgeBg    string
	BadgeText  string
	Link       string
	Success    string
	Warning    string
	Info       string
}

// Theme bundles a palette with a name. Markdown names the glamour style
// used for prose rendered under this palette.
type Theme struct {
	Name     models.Theme
	Markdown string
	Tokens   ThemeTokens
}

// Themes lists available palettes.
var Themes = map[models.Theme]Theme{
	models.ThemeDark:  DarkTheme,
	models.ThemeLight: LightTheme,
}

// ForTheme returns the palette for t, falling back to dark.
func ForTheme(t models.Theme) Theme {
	if theme, ok := Themes[t]; ok {
		return theme
	}
	return DarkTheme
}

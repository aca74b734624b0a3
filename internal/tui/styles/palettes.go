package styles

import "github.com/folio-tui/folio/internal/models"

// DarkTheme is orange on near-black.
var DarkTheme = Theme{
	Name:     models.ThemeDark,
	Markdown: "dark",
	Tokens: ThemeTokens{
		Background: "#111827",
		Panel:      "#1F2937",
		Text:       "#F3F4F6",
		TextMuted:  "#D1D5DB",
		Border:     "#374151",
		Accent:     "#FB923C",
		AccentSoft: "#FDBA74",
		BadgeBg:    "#FB923C",
		BadgeText:  "#111827",
		Link:       "#60A5FA",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Info:       "#38BDF8",
	},
}

// LightTheme keeps the orange accent on a pale background.
var LightTheme = Theme{
	Name:     models.ThemeLight,
	Markdown: "light",
	Tokens: ThemeTokens{
		Background: "#F9FAFB",
		Panel:      "#FFFFFF",
		Text:       "#1F2937",
		TextMuted:  "#4B5563",
		Border:     "#D1D5DB",
		Accent:     "#EA580C",
		AccentSoft: "#F97316",
		BadgeBg:    "#BFDBFE",
		BadgeText:  "#1F2937",
		Link:       "#2563EB",
		Success:    "#059669",
		Warning:    "#B45309",
		Info:       "#0284C7",
	},
}

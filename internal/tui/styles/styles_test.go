package styles

import (
	"testing"

	"github.com/folio-tui/folio/internal/models"
)

func TestForThemeFallsBackToDark(t *testing.T) {
	if ForTheme("sepia").Name != models.ThemeDark {
		t.Fatal("unknown theme should fall back to dark")
	}
	if ForTheme(models.ThemeLight).Name != models.ThemeLight {
		t.Fatal("light theme lookup failed")
	}
}

func TestPalettesAreComplete(t *testing.T) {
	for name, theme := range Themes {
		tok := theme.Tokens
		for field, v := range map[string]string{
			"Background": tok.Background, "Panel": tok.Panel, "Text": tok.Text,
			"TextMuted": tok.TextMuted, "Border": tok.Border, "Accent": tok.Accent,
			"BadgeBg": tok.BadgeBg, "BadgeText": tok.BadgeText, "Link": tok.Link,
		} {
			if v == "" {
				t.Fatalf("%s palette is missing %s", name, field)
			}
		}
		if theme.Markdown == "" {
			t.Fatalf("%s palette has no markdown style", name)
		}
	}
}

func TestBuildStylesCarriesTheme(t *testing.T) {
	s := ForMode(models.ThemeLight)
	if s.Theme.Name != models.ThemeLight {
		t.Fatalf("styles built for %q", s.Theme.Name)
	}
	if DefaultStyles().Theme.Name != models.DefaultTheme {
		t.Fatal("default styles should use the default theme")
	}
}

package models

import "testing"

func TestParseTheme(t *testing.T) {
	for _, in := range []string{"dark", "DARK", " dark "} {
		got, err := ParseTheme(in)
		if err != nil || got != ThemeDark {
			t.Fatalf("ParseTheme(%q) = %q, %v", in, got, err)
		}
	}
	if got, err := ParseTheme("light"); err != nil || got != ThemeLight {
		t.Fatalf("ParseTheme(light) = %q, %v", got, err)
	}
	for _, in := range []string{"", "solarized", "0"} {
		if _, err := ParseTheme(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestThemeOpposite(t *testing.T) {
	if ThemeDark.Opposite() != ThemeLight {
		t.Fatalf("dark should flip to light")
	}
	if ThemeLight.Opposite() != ThemeDark {
		t.Fatalf("light should flip to dark")
	}
	if ThemeDark.Opposite().Opposite() != ThemeDark {
		t.Fatalf("double flip should return to dark")
	}
}

func TestSkillCategoryAllSkills(t *testing.T) {
	cat := SkillCategory{
		Label:  "Frameworks",
		Skills: []string{"Go"},
		Groups: []SkillGroup{
			{Label: "Web", Skills: []string{"React", "Flask"}},
			{Label: "ML", Skills: []string{"PyTorch"}},
		},
	}
	got := cat.AllSkills()
	want := []string{"Go", "React", "Flask", "PyTorch"}
	if len(got) != len(want) {
		t.Fatalf("AllSkills() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllSkills()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSocialLinkTarget(t *testing.T) {
	if (SocialLink{URL: "https://x"}).Target() != "_blank" {
		t.Fatal("regular links open in a new context")
	}
	if (SocialLink{URL: "https://x", Download: true}).Target() != "_self" {
		t.Fatal("download links stay in the same context")
	}
}

func TestEventValidate(t *testing.T) {
	ev := &Event{Type: EventTypeThemeToggled, EntityType: EntityTypeTheme, EntityID: "theme"}
	if err := ev.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := (&Event{}).Validate(); err == nil {
		t.Fatal("expected error for empty event")
	}
}

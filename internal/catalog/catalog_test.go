package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/folio-tui/folio/internal/models"
)

func TestLoadBuiltin(t *testing.T) {
	cat, err := LoadBuiltin()
	require.NoError(t, err)
	require.Equal(t, SourceBuiltin, cat.Source)
	require.Equal(t, "Rahil Jain", cat.Profile.Name)
	require.Equal(t, []string{"Code", "Develop", "Test", "Deploy"}, cat.CycleWords)
	require.Len(t, cat.Work, 5)
	require.Len(t, cat.Projects, 5)
	require.Empty(t, cat.OpenSource)
	require.Len(t, cat.Certs, 1)

	email, ok := cat.Email()
	require.True(t, ok)
	require.True(t, strings.HasPrefix(email.URL, "mailto:"))

	// The last project ships without a link.
	require.False(t, cat.Projects[len(cat.Projects)-1].HasLink())
	require.True(t, cat.Projects[0].HasLink())
}

func TestBuiltinResumeIsDownload(t *testing.T) {
	cat, err := LoadBuiltin()
	require.NoError(t, err)
	for _, link := range cat.Socials {
		if link.Icon == models.IconResume {
			require.Equal(t, "_self", link.Target())
			return
		}
	}
	t.Fatal("builtin catalog has no resume link")
}

func TestResolve(t *testing.T) {
	cat, err := Resolve("  ")
	require.NoError(t, err)
	require.Equal(t, SourceBuiltin, cat.Source)

	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	cat, err = Resolve(path)
	require.NoError(t, err)
	require.Equal(t, "Ada", cat.Profile.Name)
	require.True(t, filepath.IsAbs(cat.Source))

	_, err = Resolve(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no cycle words", "profile: {name: A, role: B}\ncycle_words: []\n"},
		{"bad link", minimalYAML + "socials:\n  - {label: X, url: 'ftp://x', icon: github}\n"},
		{"bad icon", minimalYAML + "socials:\n  - {label: X, url: 'https://x.dev', icon: fax}\n"},
		{"entry without bullets", minimalYAML + "work:\n  - {title: T, timeframe: now, bullets: []}\n"},
		{"missing name", "profile: {role: B}\ncycle_words: [Code]\n"},
		{"malformed", "profile: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestValidLinkAcceptsMailto(t *testing.T) {
	data := minimalYAML + "socials:\n  - {label: Mail, url: 'mailto:a@b.dev', icon: email}\n"
	cat, err := Parse([]byte(data))
	require.NoError(t, err)
	email, ok := cat.Email()
	require.True(t, ok)
	require.Equal(t, "mailto:a@b.dev", email.URL)
}

func TestLinkTagIsRegistered(t *testing.T) {
	v, err := validatorInstance()
	require.NoError(t, err)
	require.NoError(t, v.Var("https://example.dev", linkTag))
	require.NoError(t, v.Var("mailto:a@b.dev", linkTag))
	require.Error(t, v.Var("ftp://example.dev", linkTag))
	require.Error(t, v.Var("mailto:nobody", linkTag))
}

func TestValidateNil(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestBuiltinBytesRoundTrip(t *testing.T) {
	cat, err := Parse(Builtin())
	require.NoError(t, err)
	require.NotEmpty(t, cat.Profile.About)
}

const minimalYAML = "profile: {name: Ada, role: Engineer}\ncycle_words: [' Code ']\n"

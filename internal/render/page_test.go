package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/folio-tui/folio/internal/catalog"
	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/tui/components"
	"github.com/folio-tui/folio/internal/tui/styles"
)

func builtinInput(t *testing.T, width int) Input {
	t.Helper()
	cat, err := catalog.LoadBuiltin()
	require.NoError(t, err)
	return Input{
		Catalog:   cat.Catalog,
		Styles:    styles.DefaultStyles(),
		Width:     width,
		CycleWord: "Code",
	}
}

func TestRenderHasAllAnchorsInOrder(t *testing.T) {
	page := NewRenderer().Render(builtinInput(t, 120))

	prev := -1
	for _, id := range models.SectionOrder {
		top, ok := page.AnchorTop(string(id))
		require.True(t, ok, "missing anchor %s", id)
		require.Greater(t, top, prev, "anchor %s out of order", id)
		prev = top
	}
	require.Less(t, prev, page.Lines())

	_, ok := page.AnchorTop("nonexistent")
	require.False(t, ok)
}

func TestAnchorsPointAtSectionHeaders(t *testing.T) {
	page := NewRenderer().Render(builtinInput(t, 120))
	lines := strings.Split(page.Content, "\n")
	for _, id := range models.SectionOrder {
		if id == models.SectionHome {
			continue
		}
		top := page.Anchors[string(id)]
		require.Contains(t, lines[top], models.SectionTitles[id], "anchor %s", id)
	}
}

func TestExperienceHasOneCardPerEntryInOrder(t *testing.T) {
	in := builtinInput(t, 120)
	page := NewRenderer().Render(in)

	start := page.Anchors[string(models.SectionExperience)]
	end := page.Anchors[string(models.SectionSkills)]
	section := strings.Join(strings.Split(page.Content, "\n")[start:end], "\n")

	require.Len(t, in.Catalog.Work, 5)
	last := -1
	for _, w := range in.Catalog.Work {
		idx := strings.Index(section, w.Title)
		require.GreaterOrEqual(t, idx, 0, "missing card %q", w.Title)
		require.Greater(t, idx, last, "card %q out of order", w.Title)
		last = idx
		for _, skill := range w.Skills {
			require.Contains(t, section, skill)
		}
	}
	// One top border per card.
	require.Equal(t, 5, strings.Count(section, "╭"))
}

func TestProjectsRenderLinkOnlyWhenPresent(t *testing.T) {
	in := builtinInput(t, 120)
	page := NewRenderer().Render(in)
	start := page.Anchors[string(models.SectionProjects)]
	end := page.Anchors[string(models.SectionOpenSource)]
	section := strings.Join(strings.Split(page.Content, "\n")[start:end], "\n")

	withLink := 0
	for _, p := range in.Catalog.Projects {
		if p.HasLink() {
			withLink++
		}
	}
	require.Equal(t, withLink, strings.Count(section, components.LinkLabel))
}

func TestEmptyOpenSourceRendersEmptyState(t *testing.T) {
	page := NewRenderer().Render(builtinInput(t, 120))
	require.Contains(t, page.Content, "Open source contributions coming soon")
}

func TestCycleWordAppearsInHero(t *testing.T) {
	in := builtinInput(t, 100)
	in.CycleWord = "Deploy"
	page := NewRenderer().Render(in)
	hero := strings.Join(strings.Split(page.Content, "\n")[:page.Anchors[string(models.SectionAbout)]], "\n")
	require.Contains(t, hero, "Deploy")
}

func TestNarrowLayoutStillRenders(t *testing.T) {
	page := NewRenderer().Render(builtinInput(t, 50))
	require.NotEmpty(t, page.Content)
	require.Len(t, page.Anchors, len(models.SectionOrder))
}

func TestNilCatalogRendersNothing(t *testing.T) {
	page := NewRenderer().Render(Input{Styles: styles.DefaultStyles(), Width: 80})
	require.Empty(t, page.Content)
	require.Zero(t, page.Lines())
}

func TestMissingAboutIsSkipped(t *testing.T) {
	cat := &models.Catalog{
		Profile:    models.Profile{Name: "Ada", Role: "Engineer"},
		CycleWords: []string{"Code"},
	}
	page := NewRenderer().Render(Input{Catalog: cat, Styles: styles.DefaultStyles(), Width: 80})
	_, ok := page.AnchorTop(string(models.SectionAbout))
	require.False(t, ok)
	_, ok = page.AnchorTop(string(models.SectionExperience))
	require.True(t, ok)
}

func TestRendererCachesMarkdown(t *testing.T) {
	r := NewRenderer()
	in := builtinInput(t, 90)
	r.Render(in)
	r.Render(in)
	require.Len(t, r.markdown, 1)
	in.Styles = styles.ForMode(models.ThemeLight)
	r.Render(in)
	require.Len(t, r.markdown, 2)
}

func TestMarkdownFallsBackToPlainText(t *testing.T) {
	r := NewRenderer()
	out := r.markdownText("no-such-style", "plain about text", 40)
	require.Contains(t, out, "plain about text")
	require.Empty(t, r.markdown)
}

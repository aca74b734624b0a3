// Package render lays the catalog out as one scrollable page.
package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/folio-tui/folio/internal/logging"
	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/tui/components"
	"github.com/folio-tui/folio/internal/tui/styles"
)

// MaxContentWidth caps the width of cards on very wide terminals.
const MaxContentWidth = 110

// twoColumnWidth is the page width at which grids use two columns.
const twoColumnWidth = 100

// Input is everything a page depends on.
type Input struct {
	Catalog   *models.Catalog
	Styles    styles.Styles
	Width     int
	CycleWord string
}

// Page is rendered content plus the top line of each section.
type Page struct {
	Content string
	Anchors map[string]int
}

// AnchorTop returns the first line of the section named anchor.
func (p Page) AnchorTop(anchor string) (int, bool) {
	top, ok := p.Anchors[anchor]
	return top, ok
}

// Lines returns the number of lines in the page.
func (p Page) Lines() int {
	if p.Content == "" {
		return 0
	}
	return strings.Count(p.Content, "\n") + 1
}

type markdownKey struct {
	style string
	width int
}

// Renderer builds pages. It caches markdown renderers per style and width.
type Renderer struct {
	mu       sync.Mutex
	markdown map[markdownKey]*glamour.TermRenderer
	logger   zerolog.Logger
}

// NewRenderer returns a Renderer with an empty cache.
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: make(map[markdownKey]*glamour.TermRenderer),
		logger:   logging.Component("render"),
	}
}

// Render lays out every section in fixed order. It never fails: sections
// with no data render an empty state or are skipped.
func (r *Renderer) Render(in Input) Page {
	page := Page{Anchors: make(map[string]int, len(models.SectionOrder))}
	if in.Catalog == nil {
		return page
	}
	width := in.Width
	if width <= 0 {
		width = 80
	}
	content := width
	if content > MaxContentWidth {
		content = MaxContentWidth
	}

	var b pageBuilder
	for _, id := range models.SectionOrder {
		block := r.section(id, in, width, content)
		if block == "" {
			continue
		}
		page.Anchors[string(id)] = b.line()
		b.add(block)
	}
	page.Content = b.String()
	return page
}

func (r *Renderer) section(id models.SectionID, in Input, width, content int) string {
	s := in.Styles
	cat := in.Catalog
	header := func() string {
		return components.RenderSectionHeader(s, models.SectionTitles[id], content)
	}

	switch id {
	case models.SectionHome:
		return components.RenderHero(s, components.Hero{
			Profile:   cat.Profile,
			CycleWord: in.CycleWord,
			Socials:   cat.Socials,
		}, width)
	case models.SectionAbout:
		if cat.Profile.About == "" {
			return ""
		}
		return header() + "\n" + r.markdownText(s.Theme.Markdown, cat.Profile.About, content)
	case models.SectionExperience:
		return header() + "\n" + cards(s, components.VariantWork, cat.Work, content)
	case models.SectionSkills:
		tiles := make([]string, 0, len(cat.Skills))
		for _, sc := range cat.Skills {
			tiles = append(tiles, components.RenderSkillCategory(s, sc, columnWidth(content)))
		}
		return header() + "\n" + grid(tiles, content)
	case models.SectionProjects:
		return header() + "\n" + cards(s, components.VariantProject, cat.Projects, content)
	case models.SectionOpenSource:
		if len(cat.OpenSource) == 0 {
			profile := ""
			for _, l := range cat.Socials {
				if l.Icon == models.IconGitHub {
					profile = l.URL
				}
			}
			return header() + "\n" + components.EmptyOpenSource(profile).Render(s)
		}
		return header() + "\n" + cards(s, components.VariantProject, cat.OpenSource, content)
	case models.SectionCerts:
		tiles := make([]string, 0, len(cat.Certs))
		for _, c := range cat.Certs {
			tiles = append(tiles, components.RenderCertification(s, c, columnWidth(content)))
		}
		return header() + "\n" + grid(tiles, content)
	}
	return ""
}

func cards(s styles.Styles, variant components.Variant, entries []models.Entry, width int) string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, components.RenderCard(s, components.CardFromEntry(variant, e), width))
	}
	return strings.Join(out, "\n")
}

func columnWidth(width int) int {
	if width >= twoColumnWidth {
		return (width - 1) / 2
	}
	return width
}

// grid places tiles two per row when there is room.
func grid(tiles []string, width int) string {
	if width < twoColumnWidth {
		return strings.Join(tiles, "\n")
	}
	var rows []string
	for i := 0; i < len(tiles); i += 2 {
		if i+1 < len(tiles) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[i], " ", tiles[i+1]))
		} else {
			rows = append(rows, tiles[i])
		}
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) markdownText(style, text string, width int) string {
	tr, err := r.termRenderer(style, width)
	if err == nil {
		var out string
		if out, err = tr.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	r.logger.Debug().Err(err).Msg("markdown render failed, using plain text")
	return lipgloss.NewStyle().Width(width).Render(text)
}

func (r *Renderer) termRenderer(style string, width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := markdownKey{style: style, width: width}
	if tr, ok := r.markdown[key]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.markdown[key] = tr
	return tr, nil
}

type pageBuilder struct {
	sb    strings.Builder
	lines int
}

// line is the index the next block will start on.
func (b *pageBuilder) line() int {
	if b.sb.Len() == 0 {
		return 0
	}
	// Blocks are separated by one blank line.
	return b.lines + 2
}

func (b *pageBuilder) add(block string) {
	if b.sb.Len() > 0 {
		b.sb.WriteString("\n\n")
		b.lines += 2
	}
	b.sb.WriteString(block)
	b.lines += strings.Count(block, "\n")
}

func (b *pageBuilder) String() string {
	return b.sb.String()
}

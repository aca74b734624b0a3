package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/tui/styles"
)

// Variant selects how a card lays out its bullets.
type Variant int

const (
	// VariantWork renders bullets as a list.
	VariantWork Variant = iota
	// VariantProject joins bullets into one paragraph.
	VariantProject
)

// LinkLabel is shown before an entry's external link.
const LinkLabel = "GitHub Repo →"

// Card is the shared shape of work and project entries.
type Card struct {
	Variant   Variant
	Title     string
	Timeframe string
	Skills    []string
	Bullets   []string
	Link      string
}

// CardFromEntry builds a card for a catalog entry.
func CardFromEntry(variant Variant, e models.Entry) Card {
	return Card{
		Variant:   variant,
		Title:     e.Title,
		Timeframe: e.Timeframe,
		Skills:    e.Skills,
		Bullets:   e.Bullets,
		Link:      e.Link,
	}
}

const minCardWidth = 20

// RenderCard renders a bordered card no wider than width.
func RenderCard(styleSet styles.Styles, card Card, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	// Border and padding take four columns.
	inner := width - 4
	wrap := lipgloss.NewStyle().Width(inner)

	lines := []string{
		wrap.Render(styleSet.Accent.Render(card.Title)),
		styleSet.Muted.Render(card.Timeframe),
	}

	if badges := RenderBadges(styleSet, card.Skills, inner); badges != "" {
		lines = append(lines, "", badges)
	}

	if len(card.Bullets) > 0 {
		lines = append(lines, "")
		switch card.Variant {
		case VariantProject:
			lines = append(lines, styleSet.Text.Copy().Width(inner).Render(strings.Join(card.Bullets, " ")))
		default:
			bullet := lipgloss.NewStyle().Width(inner - 2)
			for _, b := range card.Bullets {
				body := bullet.Render(styleSet.Text.Render(b))
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, styleSet.AccentSoft.Render("• "), body))
			}
		}
	}

	if card.Link != "" {
		lines = append(lines, "", styleSet.Link.Render(LinkLabel)+" "+styleSet.Muted.Render(card.Link))
	}

	return styleSet.Card.Copy().Width(width - 2).Render(strings.Join(lines, "\n"))
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/tui/styles"
)

// RenderSectionHeader renders a section title with a rule beneath it.
func RenderSectionHeader(styleSet styles.Styles, title string, width int) string {
	ruleWidth := width
	if ruleWidth > 40 {
		ruleWidth = 40
	}
	if ruleWidth < 1 {
		ruleWidth = 1
	}
	return styleSet.Heading.Render(title) + "\n" + styleSet.Muted.Render(strings.Repeat("─", ruleWidth))
}

// Hero is the banner at the top of the page.
type Hero struct {
	Profile   models.Profile
	CycleWord string
	Socials   []models.SocialLink
}

// RenderHero renders the greeting, name, cycling headline, and socials.
func RenderHero(styleSet styles.Styles, hero Hero, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	lines := []string{""}
	if hero.Profile.Greeting != "" {
		lines = append(lines, center.Render(styleSet.Muted.Render(hero.Profile.Greeting)))
	}
	lines = append(lines,
		center.Render(styleSet.Title.Copy().Foreground(lipgloss.Color(styleSet.Theme.Tokens.Accent)).Render(hero.Profile.Name)),
		center.Render(styleSet.Text.Render(hero.Profile.Role)),
	)
	if hero.CycleWord != "" {
		headline := styleSet.Accent.Render(hero.CycleWord)
		if hero.Profile.Tagline != "" {
			headline = styleSet.Muted.Render(hero.Profile.Tagline) + " " + headline
		}
		lines = append(lines, "", center.Render(headline))
	}
	if socials := RenderSocials(styleSet, hero.Socials, width); socials != "" {
		lines = append(lines, "", socials)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func socialIcon(kind models.IconKind) string {
	switch kind {
	case models.IconEmail:
		return "✉"
	case models.IconLinkedIn:
		return "in"
	case models.IconGitHub:
		return "gh"
	case models.IconResume:
		return "⇩"
	default:
		return "•"
	}
}

// RenderSocials lists the outbound links, one per line.
func RenderSocials(styleSet styles.Styles, links []models.SocialLink, width int) string {
	if len(links) == 0 {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	lines := make([]string, 0, len(links))
	for i, l := range links {
		label := l.Label
		if l.Download {
			label += " (download)"
		}
		line := fmt.Sprintf("%s %s  %s", styleSet.AccentSoft.Render(socialIcon(l.Icon)), styleSet.Text.Render(label), styleSet.Link.Render(l.URL))
		if k := LinkKey(i); k != "" {
			line = styleSet.NavKey.Render(k) + " " + line
		}
		lines = append(lines, center.Render(line))
	}
	return strings.Join(lines, "\n")
}

// RenderSkillCategory renders one tile of the skills grid.
func RenderSkillCategory(styleSet styles.Styles, cat models.SkillCategory, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	lines := []string{styleSet.Accent.Render(cat.Label)}
	if badges := RenderBadges(styleSet, cat.Skills, inner); badges != "" {
		lines = append(lines, badges)
	}
	for _, g := range cat.Groups {
		lines = append(lines, styleSet.AccentSoft.Render(g.Label), RenderBadges(styleSet, g.Skills, inner))
	}
	return styleSet.Card.Copy().Width(width - 2).Render(strings.Join(lines, "\n"))
}

// RenderCertification renders a certifications panel entry.
func RenderCertification(styleSet styles.Styles, cert models.Certification, width int) string {
	lines := []string{
		styleSet.Accent.Render(cert.Title),
		styleSet.Text.Render(cert.Issuer),
	}
	if cert.Timeframe != "" {
		lines = append(lines, styleSet.Muted.Render(cert.Timeframe))
	}
	if cert.Score != "" {
		lines = append(lines, styleSet.Success.Render("Score: "+cert.Score))
	}
	if cert.Image != "" {
		lines = append(lines, styleSet.Muted.Render("Certificate: "+cert.Image))
	}
	return styleSet.Card.Copy().Width(width - 2).Render(strings.Join(lines, "\n"))
}

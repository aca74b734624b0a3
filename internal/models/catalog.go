// Package models defines the portfolio content and local event types.
package models

// IconKind selects the glyph rendered next to a social link.
type IconKind string

const (
	IconEmail    IconKind = "email"
	IconLinkedIn IconKind = "linkedin"
	IconGitHub   IconKind = "github"
	IconResume   IconKind = "resume"
)

// SocialLink is an outbound link shown in the hero banner.
type SocialLink struct {
	Label    string   `yaml:"label" json:"label" validate:"required"`
	URL      string   `yaml:"url" json:"url" validate:"required,link"`
	Icon     IconKind `yaml:"icon" json:"icon" validate:"required,oneof=email linkedin github resume"`
	Download bool     `yaml:"download,omitempty" json:"download,omitempty"`
}

// Target is the browsing context the link opens in. Download links stay in
// the same context.
func (l SocialLink) Target() string {
	if l.Download {
		return "_self"
	}
	return "_blank"
}

// Entry is a work or project item. Both render through the same card.
type Entry struct {
	Title     string   `yaml:"title" json:"title" validate:"required"`
	Timeframe string   `yaml:"timeframe" json:"timeframe" validate:"required"`
	Skills    []string `yaml:"skills" json:"skills" validate:"dive,required"`
	Bullets   []string `yaml:"bullets" json:"bullets" validate:"min=1,dive,required"`
	Link      string   `yaml:"link,omitempty" json:"link,omitempty" validate:"omitempty,link"`
}

// HasLink reports whether the entry carries an external link.
func (e Entry) HasLink() bool {
	return e.Link != ""
}

// SkillGroup is a labelled sub-list inside a category.
type SkillGroup struct {
	Label  string   `yaml:"label" json:"label" validate:"required"`
	Skills []string `yaml:"skills" json:"skills" validate:"min=1,dive,required"`
}

// SkillCategory is one tile of the skills grid. A category lists skills
// directly, through groups, or both.
type SkillCategory struct {
	Label  string       `yaml:"label" json:"label" validate:"required"`
	Skills []string     `yaml:"skills,omitempty" json:"skills,omitempty" validate:"dive,required"`
	Groups []SkillGroup `yaml:"groups,omitempty" json:"groups,omitempty" validate:"dive"`
}

// AllSkills returns direct skills followed by grouped skills, in order.
func (c SkillCategory) AllSkills() []string {
	out := make([]string, 0, len(c.Skills))
	out = append(out, c.Skills...)
	for _, g := range c.Groups {
		out = append(out, g.Skills...)
	}
	return out
}

// Certification is an entry in the certifications panel.
type Certification struct {
	Title     string `yaml:"title" json:"title" validate:"required"`
	Issuer    string `yaml:"issuer" json:"issuer" validate:"required"`
	Timeframe string `yaml:"timeframe" json:"timeframe"`
	Score     string `yaml:"score,omitempty" json:"score,omitempty"`
	Image     string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Profile is the hero and about content.
type Profile struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Role     string `yaml:"role" json:"role" validate:"required"`
	Greeting string `yaml:"greeting" json:"greeting"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	About    string `yaml:"about" json:"about"`
}

// Catalog is the full static content of the portfolio.
type Catalog struct {
	Profile    Profile         `yaml:"profile" json:"profile"`
	Socials    []SocialLink    `yaml:"socials" json:"socials" validate:"dive"`
	Work       []Entry         `yaml:"work" json:"work" validate:"dive"`
	Projects   []Entry         `yaml:"projects" json:"projects" validate:"dive"`
	OpenSource []Entry         `yaml:"open_source" json:"open_source" validate:"dive"`
	Skills     []SkillCategory `yaml:"skills" json:"skills" validate:"dive"`
	Certs      []Certification `yaml:"certifications" json:"certifications" validate:"dive"`
	CycleWords []string        `yaml:"cycle_words" json:"cycle_words" validate:"min=1,dive,required"`
}

// Email returns the first mailto link, if any.
func (c *Catalog) Email() (SocialLink, bool) {
	for _, link := range c.Socials {
		if link.Icon == IconEmail {
			return link, true
		}
	}
	return SocialLink{}, false
}

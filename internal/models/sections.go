package models

// SectionID names a page section. Section ids double as navigation anchors.
type SectionID string

const (
	SectionHome       SectionID = "home"
	SectionAbout      SectionID = "about"
	SectionExperience SectionID = "experience"
	SectionSkills     SectionID = "skills"
	SectionProjects   SectionID = "projects"
	SectionOpenSource SectionID = "opensource"
	SectionCerts      SectionID = "certs"
)

// SectionOrder is the fixed render order of the page.
var SectionOrder = []SectionID{
	SectionHome,
	SectionAbout,
	SectionExperience,
	SectionSkills,
	SectionProjects,
	SectionOpenSource,
	SectionCerts,
}

// SectionTitles are the headings shown above each section.
var SectionTitles = map[SectionID]string{
	SectionHome:       "Home",
	SectionAbout:      "About Me",
	SectionExperience: "Experience",
	SectionSkills:     "Skills",
	SectionProjects:   "Projects",
	SectionOpenSource: "Open Source",
	SectionCerts:      "Certifications",
}

// NavItem is a link in the navigation bar.
type NavItem struct {
	Anchor string
	Label  string
}

// NavItems is the static navigation bar, in display order.
var NavItems = []NavItem{
	{Anchor: string(SectionHome), Label: "Home"},
	{Anchor: string(SectionAbout), Label: "About"},
	{Anchor: string(SectionExperience), Label: "Experience"},
	{Anchor: string(SectionProjects), Label: "Projects"},
	{Anchor: string(SectionOpenSource), Label: "Open Source"},
	{Anchor: string(SectionCerts), Label: "Certifications"},
}

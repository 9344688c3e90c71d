package content

import "github.com/goliatone/go-consulting-site/internal/richtext"

// CTA is a call to action link.
type CTA struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

type HomepageHero struct {
	ID              int    `json:"id" yaml:"id,omitempty"`
	Title           string `json:"title" yaml:"title"`
	Subtitle        string `json:"subtitle" yaml:"subtitle"`
	PrimaryCTA      *CTA   `json:"primaryCta" yaml:"primaryCta"`
	SecondaryCTA    *CTA   `json:"secondaryCta" yaml:"secondaryCta"`
	BackgroundImage *Media `json:"backgroundImage" yaml:"backgroundImage"`
}

func (h *HomepageHero) MediaRefs() []*Media { return []*Media{h.BackgroundImage} }

type Stat struct {
	Value       string `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type HomepageStats struct {
	ID    int    `json:"id" yaml:"id,omitempty"`
	Title string `json:"title" yaml:"title"`
	Stats []Stat `json:"stats" yaml:"stats"`
}

// AboutOverview backs the about page header. Description is a rich text
// field upstream but some CMS revisions declare it as a boolean; that case
// decodes as richtext.KindUnresolved.
type AboutOverview struct {
	ID          int              `json:"id" yaml:"id,omitempty"`
	Title       string           `json:"title" yaml:"title"`
	Subtitle    string           `json:"subtitle" yaml:"subtitle"`
	Description richtext.Content `json:"description" yaml:"description"`
	Mission     richtext.Content `json:"mission" yaml:"mission"`
	Vision      richtext.Content `json:"vision" yaml:"vision"`
	Values      []Feature        `json:"values" yaml:"values"`
	Image       *Media           `json:"image" yaml:"image"`
}

func (a *AboutOverview) MediaRefs() []*Media { return []*Media{a.Image} }

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

type GlobalSettings struct {
	ID           int          `json:"id" yaml:"id,omitempty"`
	SiteName     string       `json:"siteName" yaml:"siteName"`
	Tagline      string       `json:"tagline" yaml:"tagline"`
	ContactEmail string       `json:"contactEmail" yaml:"contactEmail"`
	ContactPhone string       `json:"contactPhone" yaml:"contactPhone"`
	Address      string       `json:"address" yaml:"address"`
	FooterText   string       `json:"footerText" yaml:"footerText"`
	Social       []SocialLink `json:"socialLinks" yaml:"socialLinks"`
	Logo         *Media       `json:"logo" yaml:"logo"`
}

func (g *GlobalSettings) MediaRefs() []*Media { return []*Media{g.Logo} }

type NavItem struct {
	Label    string    `json:"label" yaml:"label"`
	URL      string    `json:"url" yaml:"url"`
	External bool      `json:"isExternal" yaml:"isExternal"`
	Children []NavItem `json:"children" yaml:"children"`
}

type Navigation struct {
	ID    int       `json:"id" yaml:"id,omitempty"`
	Items []NavItem `json:"items" yaml:"items"`
	CTA   *CTA      `json:"cta" yaml:"cta"`
}

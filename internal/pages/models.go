package pages

import (
	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/pagination"
	"github.com/goliatone/go-consulting-site/internal/richtext"
)

// Chrome is the content shared by every page: header, navigation, footer.
type Chrome struct {
	Settings   content.GlobalSettings
	Navigation content.Navigation
	// Fallbacks names the pieces of this page that were served from the
	// fallback tables.
	Fallbacks []string
}

// UsedFallback reports whether any piece came from the fallback tables.
func (c Chrome) UsedFallback() bool { return len(c.Fallbacks) > 0 }

func (c *Chrome) note(piece string, origin fallback.Origin) {
	if origin == fallback.OriginFallback {
		c.Fallbacks = append(c.Fallbacks, piece)
	}
}

type Home struct {
	Chrome
	Hero         content.HomepageHero
	Stats        content.HomepageStats
	Services     []content.Service
	Testimonials []content.Testimonial
	Latest       []insights.Item
}

type About struct {
	Chrome
	Overview content.AboutOverview
	// Description is what the page shows. It differs from
	// Overview.Description when the CMS sent a value of the wrong type.
	Description           richtext.Content
	DescriptionUnresolved bool
	Team                  []content.TeamMember
}

type Careers struct {
	Chrome
	Jobs []content.Job
}

type JobDetail struct {
	Chrome
	ID      string
	Job     content.Job
	Outcome fallback.Outcome
}

// Contact backs both the contact and the consultation pages.
type Contact struct {
	Chrome
	Services []content.Service
}

type Services struct {
	Chrome
	Services []content.Service
}

type ServiceDetail struct {
	Chrome
	Slug    string
	Service content.Service
	Outcome fallback.Outcome
}

type Industries struct {
	Chrome
	Industries []content.Industry
}

type IndustryDetail struct {
	Chrome
	Slug     string
	Industry content.Industry
	Outcome  fallback.Outcome
}

type InsightsLanding struct {
	Chrome
	Blogs       []content.Entry
	Articles    []content.Entry
	CaseStudies []content.Entry
}

// Listing is one page of a collection, optionally narrowed to a category.
type Listing struct {
	Chrome
	Collection content.Collection
	Category   string
	Categories []string
	Page       pagination.Page[content.Entry]
}

// EntryDetail is a blog, article or case study page. Article and CaseStudy
// are set for their collections only.
type EntryDetail struct {
	Chrome
	Collection content.Collection
	Slug       string
	Entry      content.Entry
	Article    *content.Article
	CaseStudy  *content.CaseStudy
	Outcome    fallback.Outcome
	Related    []content.Entry
}

type SearchResult struct {
	Collection content.Collection
	Entry      content.Entry
}

type Search struct {
	Chrome
	Term    string
	Results []SearchResult
}

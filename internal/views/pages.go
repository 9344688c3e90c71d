package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/format"
	"github.com/goliatone/go-consulting-site/internal/forms"
	"github.com/goliatone/go-consulting-site/internal/pages"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/routes"
)

func (v *View) HomePage(p pages.Home) g.Node {
	meta := Meta{
		Title:       p.Settings.SiteName,
		Description: p.Hero.Subtitle,
		Canonical:   v.routes.Canonical(routes.Home, nil),
	}
	return v.Layout(meta, p.Chrome,
		v.hero(p.Hero),
		stats(p.Stats),
		g.If(len(p.Services) > 0, section("services", "What we do", grid(p.Services, v.ServiceCard))),
		g.If(len(p.Latest) > 0, section("latest-insights", "Latest insights",
			grid(p.Latest, v.InsightCard),
			h.P(h.A(h.Href(v.routes.InsightsPath()), g.Text("All insights"))),
		)),
		g.If(len(p.Testimonials) > 0, section("testimonials", "What our clients say", grid(p.Testimonials, TestimonialCard))),
		section("cta", "Ready to talk?",
			h.A(h.Class("button primary"), h.Href(v.routes.ConsultationPath()), g.Text("Book a consultation")),
		),
	)
}

func (v *View) AboutPage(p pages.About) g.Node {
	overview := p.Overview
	meta := Meta{Title: overview.Title, Description: overview.Subtitle, Canonical: v.routes.Canonical(routes.About, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader(overview.Title, overview.Subtitle),
		section("about-overview", "",
			image(overview.Image, overview.Title, "feature-image"),
			v.richText(p.Description, "prose"),
		),
		g.If(!overview.Mission.IsZero() || !overview.Vision.IsZero(), section("mission", "",
			h.Div(h.Class("grid"),
				g.If(!overview.Mission.IsZero(), h.Div(h.H2(g.Text("Our mission")), v.richText(overview.Mission, "prose"))),
				g.If(!overview.Vision.IsZero(), h.Div(h.H2(g.Text("Our vision")), v.richText(overview.Vision, "prose"))),
			),
		)),
		g.If(len(overview.Values) > 0, section("values", "Our values", features("", overview.Values))),
		g.If(len(p.Team) > 0, section("team", "Our team", grid(p.Team, v.TeamCard))),
	)
}

func (v *View) CareersPage(p pages.Careers) g.Node {
	meta := Meta{Title: "Careers", Description: "Open positions at " + p.Settings.SiteName, Canonical: v.routes.Canonical(routes.Careers, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Careers", "Join a team that helps organisations change for the better."),
		section("jobs", "Open positions",
			g.If(len(p.Jobs) == 0, h.P(h.Class("empty"), g.Text("There are no open positions right now. Check back soon."))),
			g.If(len(p.Jobs) > 0, grid(p.Jobs, v.JobCard)),
		),
	)
}

// JobPage renders a posting with its application form, or the not-found
// page when no posting matched.
func (v *View) JobPage(p pages.JobDetail, snap forms.Snapshot) g.Node {
	if p.Outcome == fallback.NotFound {
		return v.NotFoundPage(p.Chrome, "Position not found",
			"This position is no longer open or never existed.", v.routes.CareersPath(), "See all open positions")
	}
	job := p.Job
	meta := Meta{Title: job.Title, Description: job.Summary, Canonical: v.routes.Canonical(routes.Job, map[string]any{"id": job.DocumentID})}
	return v.Layout(meta, p.Chrome,
		pageHeader(job.Title, jobFacts(job)),
		section("job-detail", "",
			h.Dl(h.Class("job-facts"),
				g.If(job.ExperienceLevel != "", g.Group{h.Dt(g.Text("Experience")), h.Dd(g.Text(format.Label(job.ExperienceLevel)))}),
				g.If(job.SalaryRange != "", g.Group{h.Dt(g.Text("Salary")), h.Dd(g.Text(job.SalaryRange))}),
				g.If(!job.ApplicationDeadline.IsZero(), g.Group{h.Dt(g.Text("Apply by")), h.Dd(dateTag(job.ApplicationDeadline))}),
				g.If(!job.CreatedAt.IsZero(), g.Group{h.Dt(g.Text("Posted")), h.Dd(g.Text(format.PostedAgo(job.CreatedAt.Time, v.now())))}),
			),
			v.richText(job.Description, "prose"),
			v.titledRichText("Responsibilities", job.Responsibilities),
			v.titledRichText("Requirements", job.Requirements),
			v.titledRichText("Benefits", job.Benefits),
			v.titledRichText("How to apply", job.ApplicationNotes),
		),
		section("apply", "Apply for this role", v.CareerForm(job, snap)),
	)
}

func (v *View) titledRichText(title string, body richtext.Content) g.Node {
	rendered := v.richText(body, "prose")
	if rendered == nil {
		return nil
	}
	return h.Div(h.H2(g.Text(title)), rendered)
}

func (v *View) contactDetails(settings content.GlobalSettings) g.Node {
	return h.Aside(h.Class("contact-details"),
		h.H2(g.Text("Reach us directly")),
		g.If(settings.ContactEmail != "", h.P(h.A(h.Href("mailto:"+settings.ContactEmail), g.Text(settings.ContactEmail)))),
		g.If(settings.ContactPhone != "", h.P(h.A(h.Href("tel:"+telephone(settings.ContactPhone)), g.Text(settings.ContactPhone)))),
		g.If(settings.Address != "", h.P(g.Text(settings.Address))),
	)
}

func (v *View) ContactPage(p pages.Contact, snap forms.Snapshot) g.Node {
	meta := Meta{Title: "Contact", Description: "Get in touch with " + p.Settings.SiteName, Canonical: v.routes.Canonical(routes.Contact, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Contact us", "Tell us what you are working on and we will get back to you within two business days."),
		section("contact", "",
			h.Div(h.Class("grid"),
				v.ContactForm(snap),
				v.contactDetails(p.Settings),
			),
		),
	)
}

func (v *View) ConsultationPage(p pages.Contact, snap forms.Snapshot) g.Node {
	meta := Meta{Title: "Book a consultation", Canonical: v.routes.Canonical(routes.Consultation, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Book a consultation", "A free, no obligation conversation with one of our partners."),
		section("consultation", "",
			h.Div(h.Class("grid"),
				v.ConsultationForm(p.Services, snap),
				v.contactDetails(p.Settings),
			),
		),
	)
}

func (v *View) NewsletterPage(chrome pages.Chrome, snap forms.Snapshot) g.Node {
	meta := Meta{Title: "Newsletter", Canonical: v.routes.Canonical(routes.Newsletter, nil), NoIndex: true}
	return v.Layout(meta, chrome,
		pageHeader("Newsletter", "Our latest thinking, once a month."),
		section("newsletter", "", v.NewsletterForm(snap)),
	)
}

func (v *View) ServicesPage(p pages.Services) g.Node {
	meta := Meta{Title: "Services", Canonical: v.routes.Canonical(routes.Services, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Services", "How we help our clients."),
		section("services", "", grid(p.Services, v.ServiceCard)),
	)
}

func (v *View) ServicePage(p pages.ServiceDetail) g.Node {
	if p.Outcome == fallback.NotFound {
		return v.NotFoundPage(p.Chrome, "Service not found",
			"We could not find the service you were looking for.", v.routes.ServicesPath(), "See all services")
	}
	service := p.Service
	meta := Meta{Title: service.Name, Description: service.ShortDescription, Canonical: v.routes.Canonical(routes.Service, map[string]any{"slug": service.Slug})}
	return v.Layout(meta, p.Chrome,
		pageHeader(service.Name, service.ShortDescription),
		section("service-detail", "",
			image(service.FeaturedImage, service.Name, "feature-image"),
			v.richText(service.Description, "prose"),
			features("What is included", service.Features),
		),
		section("cta", "Interested in "+service.Name+"?",
			h.A(h.Class("button primary"), h.Href(v.routes.ConsultationPath()), g.Text("Book a consultation")),
		),
	)
}

func (v *View) IndustriesPage(p pages.Industries) g.Node {
	meta := Meta{Title: "Industries", Canonical: v.routes.Canonical(routes.Industries, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Industries", "Sector experience that shortens the learning curve."),
		section("industries", "", grid(p.Industries, v.IndustryCard)),
	)
}

func (v *View) IndustryPage(p pages.IndustryDetail) g.Node {
	if p.Outcome == fallback.NotFound {
		return v.NotFoundPage(p.Chrome, "Industry not found",
			"We could not find the industry you were looking for.", v.routes.IndustriesPath(), "See all industries")
	}
	industry := p.Industry
	meta := Meta{Title: industry.Name, Description: industry.ShortDescription, Canonical: v.routes.Canonical(routes.Industry, map[string]any{"slug": industry.Slug})}
	return v.Layout(meta, p.Chrome,
		pageHeader(industry.Name, industry.ShortDescription),
		section("industry-detail", "",
			image(industry.FeaturedImage, industry.Name, "feature-image"),
			v.richText(industry.Description, "prose"),
			h.Div(h.Class("grid"),
				features("Challenges we see", industry.Challenges),
				features("How we help", industry.Solutions),
			),
		),
	)
}

func (v *View) InsightsPage(p pages.InsightsLanding) g.Node {
	meta := Meta{Title: "Insights", Canonical: v.routes.Canonical(routes.Insights, nil)}
	return v.Layout(meta, p.Chrome,
		pageHeader("Insights", "Research, perspectives and client stories."),
		v.collectionSection(content.CollectionBlogs, p.Blogs),
		v.collectionSection(content.CollectionArticles, p.Articles),
		v.collectionSection(content.CollectionCaseStudies, p.CaseStudies),
	)
}

func (v *View) collectionSection(collection content.Collection, entries []content.Entry) g.Node {
	if len(entries) == 0 {
		return nil
	}
	return section(string(collection), collection.Plural(),
		grid(entries, func(entry content.Entry) g.Node { return v.EntryCard(collection, entry) }),
		h.P(h.A(h.Href(v.routes.ListingPath(collection, 1, "")), g.Text("View all "+collection.Plural()))),
	)
}

// ListingPage renders one page of a collection with its category filter.
func (v *View) ListingPage(p pages.Listing) g.Node {
	collection := p.Collection
	meta := Meta{
		Title:     collection.Plural(),
		Canonical: v.routes.Canonical(routes.Listing, map[string]any{"collection": string(collection)}),
		NoIndex:   p.Category != "" || p.Page.Number > 1,
	}
	return v.Layout(meta, p.Chrome,
		pageHeader(collection.Plural(), ""),
		section("listing", "",
			g.If(len(p.Categories) > 0, h.Nav(h.Class("categories"), h.Aria("label", "Categories"),
				h.Ul(
					h.Li(c.Classes{"current": p.Category == ""}, h.A(h.Href(v.routes.ListingPath(collection, 1, "")), g.Text("All"))),
					g.Map(p.Categories, func(category string) g.Node {
						return h.Li(c.Classes{"current": equalFold(category, p.Category)},
							h.A(h.Href(v.routes.ListingPath(collection, 1, category)), g.Text(category)),
						)
					}),
				),
			)),
			g.If(len(p.Page.Items) == 0, h.P(h.Class("empty"), g.Text("Nothing has been published here yet."))),
			g.If(len(p.Page.Items) > 0, grid(p.Page.Items, func(entry content.Entry) g.Node { return v.EntryCard(collection, entry) })),
			Pager(p.Page, func(number int) string { return v.routes.ListingPath(collection, number, p.Category) }),
		),
	)
}

// EntryPage renders a blog, article or case study, or the not-found page
// with a link back to its listing.
func (v *View) EntryPage(p pages.EntryDetail) g.Node {
	if p.Outcome == fallback.NotFound {
		return v.NotFoundPage(p.Chrome, p.Collection.Label()+" not found",
			"We could not find what you were looking for. It may have been moved or unpublished.",
			v.routes.ListingPath(p.Collection, 1, ""), "Back to "+p.Collection.Plural())
	}
	entry := p.Entry
	minutes := format.ReadingTime(v.richtext.ExtractText(entry.Content))
	meta := Meta{
		Title:       entry.Title,
		Description: entry.Excerpt,
		Canonical:   v.routes.Canonical(routes.Entry, map[string]any{"collection": string(p.Collection), "slug": entry.Slug}),
	}
	return v.Layout(meta, p.Chrome,
		h.Article(h.Class("entry"),
			h.Header(h.Class("hero page-header"),
				h.Div(h.Class("container"),
					h.A(h.Class("badge"), h.Href(v.routes.ListingPath(p.Collection, 1, entry.Category)), g.Text(orDefault(entry.Category, p.Collection.Label()))),
					h.H1(g.Text(entry.Title)),
					h.P(h.Class("meta"),
						g.If(entry.Author != "", h.Span(g.Text("By "+string(entry.Author)+" · "))),
						dateTag(entry.PublicationDate),
						g.If(minutes > 0, h.Span(g.Text(" · "+strconv.Itoa(minutes)+" min read"))),
					),
				),
			),
			h.Div(h.Class("container"),
				image(entry.FeaturedImage, entry.Title, "feature-image"),
				g.Iff(p.CaseStudy != nil, func() g.Node { return v.caseStudy(p.CaseStudy) }),
				g.Iff(p.Article != nil, func() g.Node { return v.articleFacts(p.Article) }),
				v.richText(entry.Content, "prose"),
			),
		),
		g.If(len(p.Related) > 0, section("related", "Related "+p.Collection.Plural(),
			grid(p.Related, func(related content.Entry) g.Node { return v.EntryCard(p.Collection, related) }),
		)),
	)
}

func (v *View) caseStudy(study *content.CaseStudy) g.Node {
	return h.Div(h.Class("case-study"),
		h.Dl(h.Class("case-facts"),
			g.If(study.ClientName != "", g.Group{h.Dt(g.Text("Client")), h.Dd(g.Text(study.ClientName))}),
			g.If(study.Industry != "", g.Group{h.Dt(g.Text("Industry")), h.Dd(g.Text(study.Industry))}),
		),
		image(study.ClientLogo, study.ClientName, "client-logo"),
		v.titledRichText("The challenge", study.Challenge),
		v.titledRichText("Our solution", study.Solution),
		v.titledRichText("Results", study.Results),
	)
}

func (v *View) articleFacts(article *content.Article) g.Node {
	return h.Div(h.Class("article-facts"),
		g.If(article.ResearchType != "", h.P(h.Class("badge"), g.Text(format.Label(article.ResearchType)))),
		g.If(len(article.Attachments) > 0, h.Ul(h.Class("attachments"), g.Map(article.Attachments, func(media content.Media) g.Node {
			return h.Li(h.A(h.Href(media.URL), g.Attr("download"), g.Text(orDefault(media.Name, media.URL))))
		}))),
	)
}

// SearchPage renders the search form and any matches.
func (v *View) SearchPage(p pages.Search) g.Node {
	meta := Meta{Title: "Search", Canonical: v.routes.Canonical(routes.Search, nil), NoIndex: true}
	return v.Layout(meta, p.Chrome,
		pageHeader("Search insights", ""),
		section("search", "",
			g.El("form", h.Action(v.routes.SearchPath("")), h.Method("get"), h.Role("search"),
				h.Input(h.Type("search"), h.Name("q"), h.Value(p.Term), h.Aria("label", "Search term")),
				h.Button(h.Type("submit"), g.Text("Search")),
			),
			g.If(p.Term != "", h.P(h.Class("summary"), g.Textf("%s for “%s”", resultCount(len(p.Results)), p.Term))),
			g.If(len(p.Results) > 0, h.Div(h.Class("grid"), g.Map(p.Results, func(result pages.SearchResult) g.Node {
				return v.EntryCard(result.Collection, result.Entry)
			}))),
		),
	)
}

func resultCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return format.Count(n) + " results"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func equalFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

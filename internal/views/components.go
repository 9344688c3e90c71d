package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/format"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/richtext"
)

const cardExcerptWidth = 180

func image(media *content.Media, alt, class string) g.Node {
	if media == nil || media.URL == "" {
		return nil
	}
	return h.Img(
		h.Src(media.URL),
		h.Alt(media.Alt(alt)),
		g.If(class != "", h.Class(class)),
		g.If(media.Width > 0, h.Width(strconv.Itoa(media.Width))),
		g.If(media.Height > 0, h.Height(strconv.Itoa(media.Height))),
		g.Attr("loading", "lazy"),
	)
}

// richText renders normalized content. Empty and unresolved content render
// nothing.
func (v *View) richText(body richtext.Content, class string) g.Node {
	markup := v.richtext.RenderContent(body)
	if markup == "" {
		return nil
	}
	return h.Div(h.Class(class), g.Raw(markup))
}

func dateTag(d content.Date) g.Node {
	if d.IsZero() {
		return nil
	}
	return g.El("time", g.Attr("datetime", d.String()), g.Text(format.Date(d.Time)))
}

func section(class, heading string, children ...g.Node) g.Node {
	return h.Section(c.Classes{"section": true, class: class != ""},
		h.Div(h.Class("container"),
			g.If(heading != "", h.H2(g.Text(heading))),
			g.Group(children),
		),
	)
}

func grid[T any](items []T, card func(T) g.Node) g.Node {
	return h.Div(h.Class("grid"), g.Map(items, card))
}

func (v *View) hero(hero content.HomepageHero) g.Node {
	var background g.Node
	if hero.BackgroundImage != nil && hero.BackgroundImage.URL != "" {
		background = h.Img(h.Class("hero-background"), h.Src(hero.BackgroundImage.URL), h.Alt(""), g.Attr("aria-hidden", "true"))
	}
	return h.Section(h.Class("hero"), background,
		h.Div(h.Class("container"),
			h.H1(g.Text(hero.Title)),
			g.If(hero.Subtitle != "", h.P(h.Class("lead"), g.Text(hero.Subtitle))),
			h.Div(h.Class("hero-actions"),
				cta(hero.PrimaryCTA, "button primary"),
				cta(hero.SecondaryCTA, "button secondary"),
			),
		),
	)
}

func cta(link *content.CTA, class string) g.Node {
	if link == nil || link.URL == "" {
		return nil
	}
	return h.A(h.Class(class), h.Href(link.URL), g.Text(link.Label))
}

func pageHeader(title, subtitle string) g.Node {
	return h.Section(h.Class("hero page-header"),
		h.Div(h.Class("container"),
			h.H1(g.Text(title)),
			g.If(subtitle != "", h.P(h.Class("lead"), g.Text(subtitle))),
		),
	)
}

func stats(block content.HomepageStats) g.Node {
	if len(block.Stats) == 0 {
		return nil
	}
	return section("stats", block.Title,
		h.Dl(h.Class("grid"), g.Map(block.Stats, func(stat content.Stat) g.Node {
			return h.Div(h.Class("stat"),
				h.Dt(h.Class("stat-value"), g.Text(stat.Value)),
				h.Dd(
					h.Strong(g.Text(stat.Label)),
					g.If(stat.Description != "", h.P(g.Text(stat.Description))),
				),
			)
		})),
	)
}

func features(heading string, items []content.Feature) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Div(h.Class("features"),
		g.If(heading != "", h.H3(g.Text(heading))),
		h.Ul(g.Map(items, func(feature content.Feature) g.Node {
			return h.Li(
				h.Strong(g.Text(feature.Title)),
				g.If(feature.Description != "", h.P(g.Text(feature.Description))),
			)
		})),
	)
}

// InsightCard renders one item of the latest insights feed.
func (v *View) InsightCard(item insights.Item) g.Node {
	href := v.routes.EntryPath(item.Collection, item.Slug)
	return h.Article(h.Class("card insight-card"),
		g.If(item.Image != "", h.A(h.Href(href), h.Img(h.Src(item.Image), h.Alt(item.Title), g.Attr("loading", "lazy")))),
		h.Span(h.Class("badge"), g.Text(item.Category)),
		h.H3(h.A(h.Href(href), g.Text(item.Title))),
		g.If(item.Excerpt != "", h.P(g.Text(item.Excerpt))),
		h.P(h.Class("meta"),
			g.If(item.Author != "", h.Span(g.Text(item.Author))),
			g.If(!item.Published.IsZero(), h.Span(g.Text(" · "+format.Date(item.Published)))),
		),
	)
}

// EntryCard renders a blog, article or case study teaser.
func (v *View) EntryCard(collection content.Collection, entry content.Entry) g.Node {
	href := v.routes.EntryPath(collection, entry.Slug)
	excerpt := entry.Excerpt
	if excerpt == "" {
		excerpt = v.richtext.Excerpt(entry.Content, cardExcerptWidth)
	}
	category := entry.Category
	if category == "" {
		category = collection.Label()
	}
	return h.Article(h.Class("card entry-card"),
		g.Iff(entry.FeaturedImage != nil && entry.FeaturedImage.URL != "", func() g.Node {
			return h.A(h.Href(href), image(entry.FeaturedImage, entry.Title, ""))
		}),
		h.Span(h.Class("badge"), g.Text(category)),
		h.H3(h.A(h.Href(href), g.Text(entry.Title))),
		g.If(excerpt != "", h.P(g.Text(format.Truncate(excerpt, cardExcerptWidth)))),
		h.P(h.Class("meta"),
			g.If(entry.Author != "", h.Span(g.Text(string(entry.Author)+" · "))),
			dateTag(entry.PublicationDate),
		),
	)
}

func (v *View) TeamCard(member content.TeamMember) g.Node {
	return h.Article(h.Class("card team-card"),
		image(member.Photo, member.FullName, "avatar"),
		h.H3(g.Text(member.FullName)),
		h.P(h.Class("meta"), g.Text(member.Position),
			g.If(member.Department != "", g.Text(" · "+member.Department)),
		),
		v.richText(member.Bio, "bio"),
		h.P(h.Class("links"),
			g.If(member.Email != "", h.A(h.Href("mailto:"+member.Email), g.Text("Email"))),
			g.If(member.LinkedinURL != "", h.A(h.Href(member.LinkedinURL), h.Rel("noopener noreferrer"), h.Target("_blank"), g.Text(" LinkedIn"))),
		),
	)
}

// JobCard shows the posting summary with its relative age.
func (v *View) JobCard(job content.Job) g.Node {
	href := v.routes.JobPath(job.DocumentID)
	posted := format.PostedAgo(job.CreatedAt.Time, v.now())
	return h.Article(h.Class("card job-card"),
		h.H3(h.A(h.Href(href), g.Text(job.Title))),
		h.P(h.Class("meta"), g.Text(jobFacts(job))),
		g.If(job.Summary != "", h.P(g.Text(job.Summary))),
		g.If(posted != "", h.P(h.Class("posted"), g.Text("Posted "+posted))),
		h.A(h.Class("button"), h.Href(href), g.Text("View role")),
	)
}

func jobFacts(job content.Job) string {
	return joinNonEmpty(" · ", job.Department, job.Location, format.Label(string(job.JobType)))
}

func (v *View) ServiceCard(service content.Service) g.Node {
	href := v.routes.ServicePath(service.Slug)
	return h.Article(h.Class("card service-card"),
		image(service.FeaturedImage, service.Name, ""),
		h.H3(h.A(h.Href(href), g.Text(service.Name))),
		g.If(service.ShortDescription != "", h.P(g.Text(service.ShortDescription))),
		h.A(h.Href(href), g.Text("Learn more")),
	)
}

func (v *View) IndustryCard(industry content.Industry) g.Node {
	href := v.routes.IndustryPath(industry.Slug)
	return h.Article(h.Class("card industry-card"),
		image(industry.FeaturedImage, industry.Name, ""),
		h.H3(h.A(h.Href(href), g.Text(industry.Name))),
		g.If(industry.ShortDescription != "", h.P(g.Text(industry.ShortDescription))),
		h.A(h.Href(href), g.Text("Learn more")),
	)
}

func TestimonialCard(testimonial content.Testimonial) g.Node {
	return h.Figure(h.Class("card testimonial-card"),
		h.Blockquote(h.P(g.Text(testimonial.Quote))),
		h.FigCaption(
			image(testimonial.Photo, testimonial.AuthorName, "avatar"),
			h.Strong(g.Text(testimonial.AuthorName)),
			g.If(testimonial.AuthorTitle != "" || testimonial.Company != "",
				h.Span(g.Text(" "+joinNonEmpty(", ", testimonial.AuthorTitle, testimonial.Company))),
			),
			g.If(testimonial.Rating > 0, h.Span(h.Class("rating"), h.Aria("label", strconv.Itoa(testimonial.Rating)+" out of 5"),
				g.Text(stars(testimonial.Rating)),
			)),
		),
	)
}

func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	out := ""
	for i := range 5 {
		if i < rating {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	out := ""
	for _, value := range values {
		if value == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += value
	}
	return out
}

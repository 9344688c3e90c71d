package strapi

import (
	"context"
	"net/http"

	"github.com/goliatone/go-consulting-site/internal/content"
)

// Strapi resource names.
const (
	ResourceBlogs           = "blogs"
	ResourceArticles        = "articles"
	ResourceCaseStudies     = "case-studies"
	ResourceTeamMembers     = "team-members"
	ResourceJobs            = "jobs"
	ResourceServices        = "services"
	ResourceIndustries      = "industries"
	ResourceTestimonials    = "testimonials"
	ResourceNavigation      = "navigation"
	ResourceGlobalSettings  = "global-setting"
	ResourceHomepageHero    = "homepage-hero"
	ResourceHomepageStats   = "homepage-stat"
	ResourceAboutOverview   = "about-page-overview"
	ResourceFormSubmissions = "form-submissions"
)

// ListOptions bounds a collection read. Zero values mean no bound.
type ListOptions struct {
	Limit int
	Start int
}

// Latest asks for the n newest items.
func Latest(n int) ListOptions {
	return ListOptions{Limit: n}
}

func (c *Client) ListBlogs(ctx context.Context, opts ListOptions) Envelope[[]content.Blog] {
	return list[content.Blog](ctx, c, ResourceBlogs, publishedQuery(opts))
}

// GetBlog looks a blog up by slug. The slice is returned as the CMS sent it,
// so an unknown slug yields an empty slice rather than an error.
func (c *Client) GetBlog(ctx context.Context, slug string) Envelope[[]content.Blog] {
	return list[content.Blog](ctx, c, ResourceBlogs, publishedQuery(ListOptions{}).With(Eq("slug", slug)))
}

func (c *Client) ListArticles(ctx context.Context, opts ListOptions) Envelope[[]content.Article] {
	return list[content.Article](ctx, c, ResourceArticles, publishedQuery(opts))
}

func (c *Client) GetArticle(ctx context.Context, slug string) Envelope[[]content.Article] {
	return list[content.Article](ctx, c, ResourceArticles, publishedQuery(ListOptions{}).With(Eq("slug", slug)))
}

func (c *Client) ListCaseStudies(ctx context.Context, opts ListOptions) Envelope[[]content.CaseStudy] {
	return list[content.CaseStudy](ctx, c, ResourceCaseStudies, publishedQuery(opts))
}

func (c *Client) GetCaseStudy(ctx context.Context, slug string) Envelope[[]content.CaseStudy] {
	return list[content.CaseStudy](ctx, c, ResourceCaseStudies, publishedQuery(ListOptions{}).With(Eq("slug", slug)))
}

func (c *Client) ListTeamMembers(ctx context.Context) Envelope[[]content.TeamMember] {
	return list[content.TeamMember](ctx, c, ResourceTeamMembers, activeQuery(sortCurated, ListOptions{}))
}

func (c *Client) ListJobs(ctx context.Context) Envelope[[]content.Job] {
	return list[content.Job](ctx, c, ResourceJobs, activeQuery(sortCreatedAt, ListOptions{}))
}

// GetJob looks an active job up by document id.
func (c *Client) GetJob(ctx context.Context, documentID string) Envelope[[]content.Job] {
	q := activeQuery(sortCreatedAt, ListOptions{}).With(Eq("documentId", documentID))
	return list[content.Job](ctx, c, ResourceJobs, q)
}

func (c *Client) ListServices(ctx context.Context) Envelope[[]content.Service] {
	return list[content.Service](ctx, c, ResourceServices, activeQuery(sortCurated, ListOptions{}))
}

func (c *Client) GetService(ctx context.Context, slug string) Envelope[[]content.Service] {
	q := activeQuery(sortCurated, ListOptions{}).With(Eq("slug", slug))
	return list[content.Service](ctx, c, ResourceServices, q)
}

func (c *Client) ListIndustries(ctx context.Context) Envelope[[]content.Industry] {
	return list[content.Industry](ctx, c, ResourceIndustries, activeQuery(sortCurated, ListOptions{}))
}

func (c *Client) GetIndustry(ctx context.Context, slug string) Envelope[[]content.Industry] {
	q := activeQuery(sortCurated, ListOptions{}).With(Eq("slug", slug))
	return list[content.Industry](ctx, c, ResourceIndustries, q)
}

func (c *Client) ListTestimonials(ctx context.Context) Envelope[[]content.Testimonial] {
	return list[content.Testimonial](ctx, c, ResourceTestimonials, activeQuery(sortCurated, ListOptions{}))
}

func (c *Client) GetNavigation(ctx context.Context) Envelope[*content.Navigation] {
	return single[content.Navigation](ctx, c, ResourceNavigation, singleQuery())
}

func (c *Client) GetGlobalSettings(ctx context.Context) Envelope[*content.GlobalSettings] {
	return single[content.GlobalSettings](ctx, c, ResourceGlobalSettings, singleQuery())
}

func (c *Client) GetHomepageHero(ctx context.Context) Envelope[*content.HomepageHero] {
	return single[content.HomepageHero](ctx, c, ResourceHomepageHero, singleQuery())
}

func (c *Client) GetHomepageStats(ctx context.Context) Envelope[*content.HomepageStats] {
	return single[content.HomepageStats](ctx, c, ResourceHomepageStats, singleQuery())
}

func (c *Client) GetAboutOverview(ctx context.Context) Envelope[*content.AboutOverview] {
	return single[content.AboutOverview](ctx, c, ResourceAboutOverview, singleQuery())
}

// Ping checks that the CMS answers an authenticated read.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, ResourceGlobalSettings, nil, nil, nil)
}

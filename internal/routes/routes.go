// Package routes names every URL the site links to and builds them with
// go-urlkit, so page links and CMS endpoints come from one table.
package routes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-consulting-site/internal/content"
)

const (
	GroupSite   = "site"
	GroupPublic = "public"
	GroupCMS    = "cms"
)

// Site routes.
const (
	Home         = "home"
	About        = "about"
	Careers      = "careers"
	Job          = "job"
	JobApply     = "job_apply"
	Contact      = "contact"
	Consultation = "consultation"
	Newsletter   = "newsletter"
	Services     = "services"
	Service      = "service"
	Industries   = "industries"
	Industry     = "industry"
	Insights     = "insights"
	Listing      = "listing"
	Entry        = "entry"
	Search       = "search"
	Latest       = "latest_insights"
)

// CMS routes.
const (
	Resource = "resource"
)

var sitePaths = map[string]string{
	Home:         "/",
	About:        "/about",
	Careers:      "/careers",
	Job:          "/careers/:id",
	JobApply:     "/careers/:id/apply",
	Contact:      "/contact",
	Consultation: "/consultation",
	Newsletter:   "/newsletter",
	Services:     "/services",
	Service:      "/services/:slug",
	Industries:   "/industries",
	Industry:     "/industries/:slug",
	Insights:     "/insights",
	Listing:      "/insights/:collection",
	Entry:        "/insights/:collection/:slug",
	Search:       "/search",
	Latest:       "/api/insights/latest",
}

var cmsPaths = map[string]string{
	Resource: "/api/:resource",
}

// Manager builds site and CMS URLs.
type Manager struct {
	manager    *urlkit.RouteManager
	cmsBase    string
	publicBase string
}

// New configures the route table. Site links are always root relative;
// publicURL, when set, is used for canonical links.
func New(publicURL, cmsBaseURL string) *Manager {
	cmsBase := strings.TrimRight(strings.TrimSpace(cmsBaseURL), "/")
	publicBase := strings.TrimRight(strings.TrimSpace(publicURL), "/")
	cfg := &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:  GroupSite,
				Paths: sitePaths,
			},
			{
				Name:    GroupPublic,
				BaseURL: publicBase,
				Paths:   sitePaths,
			},
			{
				Name:    GroupCMS,
				BaseURL: cmsBase,
				Paths:   cmsPaths,
			},
		},
	}
	return &Manager{manager: urlkit.NewRouteManager(cfg), cmsBase: cmsBase, publicBase: publicBase}
}

// Build resolves route in group. go-urlkit panics on unknown groups and
// routes; those panics come back as errors.
func (m *Manager) Build(group, route string, params map[string]any, query url.Values) (built string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: %s.%s: %v", group, route, rec)
		}
	}()

	builder := m.manager.Group(group).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	for key, values := range query {
		for _, value := range values {
			builder.WithQuery(key, value)
		}
	}
	return builder.Build()
}

// Path builds a site link and falls back to the raw template with params
// substituted when go-urlkit cannot, so templates never render an empty href.
func (m *Manager) Path(route string, params map[string]any, query url.Values) string {
	if built, err := m.Build(GroupSite, route, params, query); err == nil && built != "" {
		return built
	}
	path := sitePaths[route]
	for key, value := range params {
		path = strings.ReplaceAll(path, ":"+key, url.PathEscape(fmt.Sprint(value)))
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return path
}

// Canonical builds the absolute public URL of a site route. Without a
// public URL it returns the relative path.
func (m *Manager) Canonical(route string, params map[string]any) string {
	if m.publicBase == "" {
		return m.Path(route, params, nil)
	}
	if built, err := m.Build(GroupPublic, route, params, nil); err == nil && strings.HasPrefix(built, "http") {
		return built
	}
	return m.publicBase + m.Path(route, params, nil)
}

// CMSResource returns the absolute endpoint for a Strapi collection or
// single type, e.g. https://cms.example.com/api/blogs.
func (m *Manager) CMSResource(resource string) string {
	params := map[string]any{"resource": resource}
	if built, err := m.Build(GroupCMS, Resource, params, nil); err == nil && strings.HasPrefix(built, "http") {
		return built
	}
	joined, err := url.JoinPath(m.cmsBase, "api", resource)
	if err != nil {
		return m.cmsBase + "/api/" + resource
	}
	return joined
}

func (m *Manager) HomePath() string         { return m.Path(Home, nil, nil) }
func (m *Manager) AboutPath() string        { return m.Path(About, nil, nil) }
func (m *Manager) CareersPath() string      { return m.Path(Careers, nil, nil) }
func (m *Manager) ContactPath() string      { return m.Path(Contact, nil, nil) }
func (m *Manager) ConsultationPath() string { return m.Path(Consultation, nil, nil) }
func (m *Manager) NewsletterPath() string   { return m.Path(Newsletter, nil, nil) }
func (m *Manager) ServicesPath() string     { return m.Path(Services, nil, nil) }
func (m *Manager) IndustriesPath() string   { return m.Path(Industries, nil, nil) }
func (m *Manager) InsightsPath() string     { return m.Path(Insights, nil, nil) }

func (m *Manager) JobPath(id string) string {
	return m.Path(Job, map[string]any{"id": id}, nil)
}

func (m *Manager) JobApplyPath(id string) string {
	return m.Path(JobApply, map[string]any{"id": id}, nil)
}

func (m *Manager) ServicePath(slug string) string {
	return m.Path(Service, map[string]any{"slug": slug}, nil)
}

func (m *Manager) IndustryPath(slug string) string {
	return m.Path(Industry, map[string]any{"slug": slug}, nil)
}

// ListingPath links to a collection listing; page 1 and an empty category
// are omitted from the query.
func (m *Manager) ListingPath(collection content.Collection, page int, category string) string {
	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	if category = strings.TrimSpace(category); category != "" {
		query.Set("category", category)
	}
	return m.Path(Listing, map[string]any{"collection": string(collection)}, query)
}

func (m *Manager) EntryPath(collection content.Collection, slug string) string {
	return m.Path(Entry, map[string]any{"collection": string(collection), "slug": slug}, nil)
}

func (m *Manager) SearchPath(term string) string {
	query := url.Values{}
	if term = strings.TrimSpace(term); term != "" {
		query.Set("q", term)
	}
	return m.Path(Search, nil, query)
}

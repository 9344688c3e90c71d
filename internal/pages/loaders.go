package pages

import (
	"context"
	"strings"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

type chromeReads struct {
	settings strapi.Envelope[*content.GlobalSettings]
	nav      strapi.Envelope[*content.Navigation]
}

func (r *chromeReads) tasks(reader Reader) []task {
	return []task{
		func(ctx context.Context) { r.settings = reader.GetGlobalSettings(ctx) },
		func(ctx context.Context) { r.nav = reader.GetNavigation(ctx) },
	}
}

func (s *Service) chrome(r *chromeReads) Chrome {
	var (
		c      Chrome
		origin fallback.Origin
	)
	c.Settings, origin = fallback.Single(r.settings, s.store.Settings())
	c.note("settings", origin)
	c.Navigation, origin = fallback.Single(r.nav, s.store.Navigation())
	c.note("navigation", origin)
	return c
}

// Chrome loads only the shared layout content. Error and not-found pages
// use it.
func (s *Service) Chrome(ctx context.Context) (Chrome, error) {
	var reads chromeReads
	if err := settle(ctx, reads.tasks(s.reader)...); err != nil {
		return Chrome{}, err
	}
	return s.chrome(&reads), nil
}

func (s *Service) Home(ctx context.Context) (Home, error) {
	var (
		chrome       chromeReads
		hero         strapi.Envelope[*content.HomepageHero]
		stats        strapi.Envelope[*content.HomepageStats]
		services     strapi.Envelope[[]content.Service]
		testimonials strapi.Envelope[[]content.Testimonial]
		latest       []insights.Item
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { hero = s.reader.GetHomepageHero(ctx) },
		func(ctx context.Context) { stats = s.reader.GetHomepageStats(ctx) },
		func(ctx context.Context) { services = s.reader.ListServices(ctx) },
		func(ctx context.Context) { testimonials = s.reader.ListTestimonials(ctx) },
		func(ctx context.Context) { latest = s.insights.Latest(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Home{}, err
	}

	page := Home{Chrome: s.chrome(&chrome), Latest: latest}
	var origin fallback.Origin
	page.Hero, origin = fallback.Single(hero, s.store.Hero())
	page.note("hero", origin)
	page.Stats, origin = fallback.Single(stats, s.store.Stats())
	page.note("stats", origin)
	page.Services, origin = fallback.Collection(services, s.store.Services())
	page.note("services", origin)
	page.Testimonials, origin = fallback.Collection(testimonials, s.store.Testimonials())
	page.note("testimonials", origin)

	s.log(ctx, "home").Debug("pages.load", "fallbacks", page.Fallbacks)
	return page, nil
}

func (s *Service) About(ctx context.Context) (About, error) {
	var (
		chrome   chromeReads
		overview strapi.Envelope[*content.AboutOverview]
		team     strapi.Envelope[[]content.TeamMember]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { overview = s.reader.GetAboutOverview(ctx) },
		func(ctx context.Context) { team = s.reader.ListTeamMembers(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return About{}, err
	}

	page := About{Chrome: s.chrome(&chrome)}
	var origin fallback.Origin
	page.Overview, origin = fallback.Single(overview, s.store.About())
	page.note("about", origin)
	page.Team, origin = fallback.Collection(team, s.store.Team())
	page.note("team", origin)

	page.Description = page.Overview.Description
	switch {
	case page.Description.IsUnresolved():
		page.DescriptionUnresolved = true
		page.Description = s.store.About().Description
		page.note("about.description", fallback.OriginFallback)
		s.log(ctx, "about").Warn("pages.about.description_unresolved", "raw", string(page.Overview.Description.Raw()))
	case page.Description.IsZero():
		page.Description = s.store.About().Description
		page.note("about.description", fallback.OriginFallback)
	}
	return page, nil
}

func (s *Service) Careers(ctx context.Context) (Careers, error) {
	var (
		chrome chromeReads
		jobs   strapi.Envelope[[]content.Job]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { jobs = s.reader.ListJobs(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Careers{}, err
	}

	page := Careers{Chrome: s.chrome(&chrome)}
	var origin fallback.Origin
	page.Jobs, origin = fallback.Collection(jobs, s.store.Jobs())
	page.note("jobs", origin)
	return page, nil
}

// Job loads one job by document id.
func (s *Service) Job(ctx context.Context, id string) (JobDetail, error) {
	id = strings.TrimSpace(id)
	var (
		chrome chromeReads
		job    strapi.Envelope[[]content.Job]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { job = s.reader.GetJob(ctx, id) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return JobDetail{}, err
	}

	page := JobDetail{Chrome: s.chrome(&chrome), ID: id}
	page.Job, page.Outcome = fallback.Detail(job, func() (content.Job, bool) {
		return s.store.Job(id)
	})
	page.noteOutcome("job", page.Outcome)
	s.log(ctx, "job").Debug("pages.detail", "id", id, "outcome", page.Outcome.String())
	return page, nil
}

// Contact backs the contact and consultation pages. Services feed the
// consultation topic list.
func (s *Service) Contact(ctx context.Context) (Contact, error) {
	var (
		chrome   chromeReads
		services strapi.Envelope[[]content.Service]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { services = s.reader.ListServices(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Contact{}, err
	}

	page := Contact{Chrome: s.chrome(&chrome)}
	var origin fallback.Origin
	page.Services, origin = fallback.Collection(services, s.store.Services())
	page.note("services", origin)
	return page, nil
}

func (s *Service) Services(ctx context.Context) (Services, error) {
	var (
		chrome   chromeReads
		services strapi.Envelope[[]content.Service]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { services = s.reader.ListServices(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Services{}, err
	}

	page := Services{Chrome: s.chrome(&chrome)}
	var origin fallback.Origin
	page.Services, origin = fallback.Collection(services, s.store.Services())
	page.note("services", origin)
	return page, nil
}

func (s *Service) Service(ctx context.Context, slug string) (ServiceDetail, error) {
	slug = strings.TrimSpace(slug)
	var (
		chrome  chromeReads
		service strapi.Envelope[[]content.Service]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { service = s.reader.GetService(ctx, slug) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return ServiceDetail{}, err
	}

	page := ServiceDetail{Chrome: s.chrome(&chrome), Slug: slug}
	page.Service, page.Outcome = fallback.Detail(service, func() (content.Service, bool) {
		return s.store.Service(slug)
	})
	page.noteOutcome("service", page.Outcome)
	return page, nil
}

func (s *Service) Industries(ctx context.Context) (Industries, error) {
	var (
		chrome     chromeReads
		industries strapi.Envelope[[]content.Industry]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { industries = s.reader.ListIndustries(ctx) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Industries{}, err
	}

	page := Industries{Chrome: s.chrome(&chrome)}
	var origin fallback.Origin
	page.Industries, origin = fallback.Collection(industries, s.store.Industries())
	page.note("industries", origin)
	return page, nil
}

func (s *Service) Industry(ctx context.Context, slug string) (IndustryDetail, error) {
	slug = strings.TrimSpace(slug)
	var (
		chrome   chromeReads
		industry strapi.Envelope[[]content.Industry]
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { industry = s.reader.GetIndustry(ctx, slug) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return IndustryDetail{}, err
	}

	page := IndustryDetail{Chrome: s.chrome(&chrome), Slug: slug}
	page.Industry, page.Outcome = fallback.Detail(industry, func() (content.Industry, bool) {
		return s.store.Industry(slug)
	})
	page.noteOutcome("industry", page.Outcome)
	return page, nil
}

func (c *Chrome) noteOutcome(piece string, outcome fallback.Outcome) {
	if outcome == fallback.FromFallback {
		c.Fallbacks = append(c.Fallbacks, piece)
	}
}

// Package pages loads the content behind every public route. Each loader
// issues its reads concurrently, waits for all of them to settle, applies
// the fallback policy per piece and returns a view model.
package pages

import (
	"context"
	"time"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/internal/pagination"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

// Reader is the part of the content client the loaders use.
type Reader interface {
	insights.Reader
	GetBlog(ctx context.Context, slug string) strapi.Envelope[[]content.Blog]
	GetArticle(ctx context.Context, slug string) strapi.Envelope[[]content.Article]
	GetCaseStudy(ctx context.Context, slug string) strapi.Envelope[[]content.CaseStudy]
	ListTeamMembers(ctx context.Context) strapi.Envelope[[]content.TeamMember]
	ListJobs(ctx context.Context) strapi.Envelope[[]content.Job]
	GetJob(ctx context.Context, documentID string) strapi.Envelope[[]content.Job]
	ListServices(ctx context.Context) strapi.Envelope[[]content.Service]
	GetService(ctx context.Context, slug string) strapi.Envelope[[]content.Service]
	ListIndustries(ctx context.Context) strapi.Envelope[[]content.Industry]
	GetIndustry(ctx context.Context, slug string) strapi.Envelope[[]content.Industry]
	ListTestimonials(ctx context.Context) strapi.Envelope[[]content.Testimonial]
	GetNavigation(ctx context.Context) strapi.Envelope[*content.Navigation]
	GetGlobalSettings(ctx context.Context) strapi.Envelope[*content.GlobalSettings]
	GetHomepageHero(ctx context.Context) strapi.Envelope[*content.HomepageHero]
	GetHomepageStats(ctx context.Context) strapi.Envelope[*content.HomepageStats]
	GetAboutOverview(ctx context.Context) strapi.Envelope[*content.AboutOverview]
}

const (
	landingPerCollection = 3
	relatedLimit         = 3
)

// Service builds view models.
type Service struct {
	reader   Reader
	store    *fallback.Store
	insights *insights.Service
	logger   logging.Logger
	pageSize int
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageSize sets the listing page size.
func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithInsights shares an insights service with the HTTP API.
func WithInsights(service *insights.Service) Option {
	return func(s *Service) {
		if service != nil {
			s.insights = service
		}
	}
}

// WithClock overrides the clock used for "posted ago" labels.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires a Service. A nil store uses fallback.Default().
func NewService(reader Reader, store *fallback.Store, opts ...Option) *Service {
	if store == nil {
		store = fallback.Default()
	}
	s := &Service{
		reader:   reader,
		store:    store,
		logger:   logging.NoOp(),
		pageSize: pagination.DefaultSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.insights == nil {
		s.insights = insights.NewService(reader, store, insights.WithLogger(s.logger))
	}
	return s
}

// Store exposes the fallback tables used by the service.
func (s *Service) Store() *fallback.Store { return s.store }

// Insights exposes the latest insights feed shared with the JSON API.
func (s *Service) Insights() *insights.Service { return s.insights }

// Now returns the service clock.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) log(ctx context.Context, route string) logging.Logger {
	return logging.WithRoute(logging.FromContext(ctx, s.logger), route)
}

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/forms"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/internal/pages"
	"github.com/goliatone/go-consulting-site/internal/views"
	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

// DefaultRequestTimeout bounds every page request.
const DefaultRequestTimeout = 12 * time.Second

// RenderBudget is the headroom a page request keeps over a single CMS read so
// a stalled read ends in fallback content rather than an expired request.
const RenderBudget = 2 * time.Second

// RequestTimeoutFor returns the page deadline for a given CMS read timeout.
func RequestTimeoutFor(cmsTimeout time.Duration) time.Duration {
	if cmsTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return cmsTimeout + RenderBudget
}

// Site registers the public pages, form posts and the latest insights API.
type Site struct {
	pages     *pages.Service
	view      *views.View
	submitter forms.Submitter
	recorder  forms.Recorder
	logger    interfaces.Logger
	timeout   time.Duration

	submitTimeout time.Duration
	successWindow time.Duration

	contact      *forms.Handler[forms.ContactMessage]
	consultation *forms.Handler[forms.ConsultationMessage]
	career       *forms.Handler[forms.CareerMessage]
	newsletter   *forms.Handler[forms.NewsletterMessage]
}

// SiteOption mutates the Site configuration.
type SiteOption func(*Site)

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) SiteOption {
	return func(s *Site) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder enables the local submission ledger for every form.
func WithRecorder(recorder forms.Recorder) SiteOption {
	return func(s *Site) {
		s.recorder = recorder
	}
}

// WithRequestTimeout overrides DefaultRequestTimeout. Zero disables the
// bound.
func WithRequestTimeout(timeout time.Duration) SiteOption {
	return func(s *Site) {
		if timeout >= 0 {
			s.timeout = timeout
		}
	}
}

// WithFormTimings bounds form delivery and sets how long the success banner
// stays up. Zero values keep the form defaults.
func WithFormTimings(submitTimeout, successWindow time.Duration) SiteOption {
	return func(s *Site) {
		s.submitTimeout = submitTimeout
		s.successWindow = successWindow
	}
}

// NewSite constructs a Site. The submitter delivers forms to the CMS.
func NewSite(service *pages.Service, view *views.View, submitter forms.Submitter, opts ...SiteOption) *Site {
	s := &Site{
		pages:     service,
		view:      view,
		submitter: submitter,
		logger:    logging.NoOp(),
		timeout:   DefaultRequestTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.contact = newFormHandler[forms.ContactMessage](s)
	s.consultation = newFormHandler[forms.ConsultationMessage](s)
	s.career = newFormHandler[forms.CareerMessage](s)
	s.newsletter = newFormHandler[forms.NewsletterMessage](s)
	return s
}

func newFormHandler[T forms.Message](s *Site) *forms.Handler[T] {
	timeout := s.submitTimeout
	if timeout <= 0 {
		timeout = s.timeout
	}
	opts := []forms.HandlerOption[T]{
		forms.WithLogger[T](s.logger),
		forms.WithTimeout[T](timeout),
	}
	if s.recorder != nil {
		opts = append(opts, forms.WithRecorder[T](s.recorder))
	}
	return forms.NewHandler[T](s.submitter, opts...)
}

// Register attaches the site routes to the provided mux.
func (s *Site) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if s == nil || s.pages == nil || s.view == nil {
		return fmt.Errorf("http: site is not configured")
	}

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /careers", s.handleCareers)
	mux.HandleFunc("GET /careers/{id}", s.handleJob)
	mux.HandleFunc("POST /careers/{id}/apply", s.handleJobApply)
	mux.HandleFunc("GET /contact", s.handleContact)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)
	mux.HandleFunc("GET /consultation", s.handleConsultation)
	mux.HandleFunc("POST /consultation", s.handleConsultationSubmit)
	mux.HandleFunc("GET /newsletter", s.handleNewsletter)
	mux.HandleFunc("POST /newsletter", s.handleNewsletterSubmit)
	mux.HandleFunc("GET /services", s.handleServices)
	mux.HandleFunc("GET /services/{slug}", s.handleService)
	mux.HandleFunc("GET /industries", s.handleIndustries)
	mux.HandleFunc("GET /industries/{slug}", s.handleIndustry)
	mux.HandleFunc("GET /insights", s.handleInsights)
	mux.HandleFunc("GET /insights/{collection}", s.handleListing)
	mux.HandleFunc("GET /insights/{collection}/{slug}", s.handleEntry)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /api/insights/latest", s.handleLatestInsights)
	mux.HandleFunc("/api/", s.handleAPINotFound)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleNotFound)
	return nil
}

// Handler returns a mux with every route registered, wrapped in the
// request timeout and panic recovery.
func (s *Site) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := s.Register(mux); err != nil {
		return nil, err
	}
	return s.recoverer(s.withTimeout(s.logRequests(mux))), nil
}

// render writes a page and reports which pieces came from fallback content.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, chrome pages.Chrome, node g.Node) {
	if chrome.UsedFallback() {
		w.Header().Set(HeaderContentFallback, strings.Join(chrome.Fallbacks, ","))
	}
	if err := writeHTML(w, status, node); err != nil {
		s.log(r).Error("http.render_failed", "path", r.URL.Path, "error", err)
	}
}

// fail handles a loader error. Loaders only fail on a deadline or a
// cancellation when the client is gone, so neither renders a view.
func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pages.ErrUnknownCollection):
		s.handleNotFound(w, r)
	case errors.Is(err, context.DeadlineExceeded):
		s.log(r).Warn("http.request_timeout", "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusGatewayTimeout), http.StatusGatewayTimeout)
	case errors.Is(err, context.Canceled):
		s.log(r).Debug("http.request_cancelled", "path", r.URL.Path)
	default:
		s.log(r).Error("http.page_failed", "path", r.URL.Path, "error", err)
		s.render(w, r, http.StatusInternalServerError, s.fallbackChrome(), s.view.ErrorPage(s.fallbackChrome()))
	}
}

func (s *Site) fallbackChrome() pages.Chrome {
	store := s.pages.Store()
	if store == nil {
		store = fallback.Default()
	}
	return pages.Chrome{Settings: store.Settings(), Navigation: store.Navigation()}
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	chrome, err := s.pages.Chrome(r.Context())
	if err != nil {
		chrome = s.fallbackChrome()
	}
	s.render(w, r, http.StatusNotFound, chrome,
		s.view.NotFoundPage(chrome, "Page not found", "The page you were looking for does not exist.", "", ""))
}

func (s *Site) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: "no api route for " + r.URL.Path})
}

func (s *Site) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Site) log(r *http.Request) interfaces.Logger {
	return logging.FromContext(r.Context(), s.logger)
}

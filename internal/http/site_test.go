package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/insights"
	"github.com/goliatone/go-consulting-site/internal/pages"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/routes"
	"github.com/goliatone/go-consulting-site/internal/strapi"
	"github.com/goliatone/go-consulting-site/internal/strapi/strapitest"
	"github.com/goliatone/go-consulting-site/internal/views"
)

func setupSite(t *testing.T, opts ...SiteOption) (*Site, http.Handler, *strapitest.Server) {
	t.Helper()
	srv := strapitest.New(t)
	client := strapi.New(srv.Config(), nil)
	service := pages.NewService(client, fallback.Default())
	view := views.New(routes.New("https://www.example.com", srv.URL), richtext.NewRenderer())
	site := NewSite(service, view, client, opts...)
	handler, err := site.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return site, handler, srv
}

func doRequest(t *testing.T, handler http.Handler, method, path string, form url.Values, expectedStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != expectedStatus {
		t.Fatalf("%s %s: expected status %d got %d: %s", method, path, expectedStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func TestHomeMarksFallbackPieces(t *testing.T) {
	_, handler, _ := setupSite(t)

	rec := doRequest(t, handler, http.MethodGet, "/", nil, http.StatusOK)
	if got := rec.Header().Get(HeaderContentFallback); !strings.Contains(got, "hero") {
		t.Fatalf("expected hero in fallback header, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), fallback.Default().Hero().Title) {
		t.Fatalf("expected fallback hero in body")
	}
}

func TestLatestInsightsAlwaysOK(t *testing.T) {
	_, handler, srv := setupSite(t)
	srv.Fail(strapi.ResourceBlogs, http.StatusInternalServerError)
	srv.Fail(strapi.ResourceArticles, http.StatusInternalServerError)
	srv.Fail(strapi.ResourceCaseStudies, http.StatusInternalServerError)

	rec := doRequest(t, handler, http.MethodGet, "/api/insights/latest", nil, http.StatusOK)
	var items []insights.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != insights.Limit {
		t.Fatalf("expected %d fallback items, got %d", insights.Limit, len(items))
	}
	for _, item := range items {
		if item.Title == "" || item.Slug == "" || item.Image == "" {
			t.Fatalf("expected complete fallback item, got %+v", item)
		}
	}
}

func TestEntryNotFound(t *testing.T) {
	_, handler, srv := setupSite(t)
	srv.SetCollection(strapi.ResourceBlogs)

	rec := doRequest(t, handler, http.MethodGet, "/insights/blogs/no-such-post", nil, http.StatusNotFound)
	if !strings.Contains(rec.Body.String(), "Back to Blogs") {
		t.Fatalf("expected link back to the listing")
	}

	doRequest(t, handler, http.MethodGet, "/insights/podcasts", nil, http.StatusNotFound)
	doRequest(t, handler, http.MethodGet, "/no/such/page", nil, http.StatusNotFound)

	rec = doRequest(t, handler, http.MethodGet, "/api/insights/oldest", nil, http.StatusNotFound)
	if !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("expected json error for unknown api route, got %q", rec.Body.String())
	}
}

func TestServicesRenderCMSNames(t *testing.T) {
	_, handler, srv := setupSite(t)
	srv.SetCollection(strapi.ResourceServices, map[string]any{
		"id":               1,
		"documentId":       "svc-1",
		"name":             "Digital Strategy",
		"slug":             "digital-strategy",
		"shortDescription": "Plans that ship.",
		"isActive":         true,
	})

	rec := doRequest(t, handler, http.MethodGet, "/services", nil, http.StatusOK)
	if !strings.Contains(rec.Body.String(), ">Digital Strategy</a>") {
		t.Fatalf("expected service name in card heading")
	}
	rec = doRequest(t, handler, http.MethodGet, "/services/digital-strategy", nil, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Digital Strategy") {
		t.Fatalf("expected service name on detail page")
	}
}

func TestListingPageQuery(t *testing.T) {
	_, handler, _ := setupSite(t)
	rec := doRequest(t, handler, http.MethodGet, "/insights/articles?page=abc", nil, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Articles") {
		t.Fatalf("expected articles listing")
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	_, handler, srv := setupSite(t)

	form := url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"Ada@Example.com"},
		"message": {"We would like to talk about a transformation programme."},
	}
	rec := doRequest(t, handler, http.MethodPost, "/contact", form, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `class="alert alert-success"`) {
		t.Fatalf("expected success banner")
	}
	if strings.Contains(rec.Body.String(), `value="Ada Lovelace"`) {
		t.Fatalf("expected values to be cleared after success")
	}

	submissions := srv.Submissions()
	if len(submissions) != 1 {
		t.Fatalf("expected one submission, got %d", len(submissions))
	}
	if submissions[0]["formType"] != "Contact" || submissions[0]["clientEmail"] != "ada@example.com" {
		t.Fatalf("unexpected submission %v", submissions[0])
	}
	if submissions[0]["ipAddress"] != "203.0.113.7" {
		t.Fatalf("expected forwarded client ip, got %v", submissions[0]["ipAddress"])
	}
}

func TestContactSubmitValidationError(t *testing.T) {
	_, handler, srv := setupSite(t)

	form := url.Values{"name": {"Ada"}, "email": {"not-an-email"}}
	rec := doRequest(t, handler, http.MethodPost, "/contact", form, http.StatusUnprocessableEntity)
	body := rec.Body.String()
	if !strings.Contains(body, `class="alert alert-error"`) || !strings.Contains(body, `class="field-error"`) {
		t.Fatalf("expected banner and field errors")
	}
	if !strings.Contains(body, `value="not-an-email"`) {
		t.Fatalf("expected values to be kept after an error")
	}
	if len(srv.Submissions()) != 0 {
		t.Fatalf("expected nothing to reach the CMS")
	}
}

func TestNewsletterDeliveryFailure(t *testing.T) {
	_, handler, srv := setupSite(t)
	srv.Fail(strapi.ResourceFormSubmissions, http.StatusInternalServerError)

	rec := doRequest(t, handler, http.MethodPost, "/newsletter", url.Values{"email": {"reader@example.com"}}, http.StatusBadGateway)
	if !strings.Contains(rec.Body.String(), `data-code="FORM_DELIVERY_FAILED"`) {
		t.Fatalf("expected delivery failure banner")
	}
}

func TestJobApply(t *testing.T) {
	_, handler, srv := setupSite(t)
	srv.SetCollection(strapi.ResourceJobs)
	job := fallback.Default().Jobs()[0]

	form := url.Values{
		"name":     {"Grace Hopper"},
		"email":    {"grace@example.com"},
		"jobId":    {"forged"},
		"jobTitle": {"Forged"},
	}
	doRequest(t, handler, http.MethodPost, "/careers/"+job.DocumentID+"/apply", form, http.StatusOK)

	submissions := srv.Submissions()
	if len(submissions) != 1 {
		t.Fatalf("expected one submission, got %d", len(submissions))
	}
	data, _ := submissions[0]["formData"].(map[string]any)
	if data["jobId"] != job.DocumentID || data["jobTitle"] != job.Title {
		t.Fatalf("expected job fields from the posting, got %v", data)
	}

	doRequest(t, handler, http.MethodPost, "/careers/unknown-job/apply", form, http.StatusNotFound)
	if len(srv.Submissions()) != 1 {
		t.Fatalf("expected no submission for an unknown job")
	}
}

func TestHealthz(t *testing.T) {
	_, handler, _ := setupSite(t)
	rec := doRequest(t, handler, http.MethodGet, "/healthz", nil, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health body %q", rec.Body.String())
	}
}

func TestRecovererRendersErrorPage(t *testing.T) {
	site, _, _ := setupSite(t)
	handler := site.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := doRequest(t, handler, http.MethodGet, "/about", nil, http.StatusInternalServerError)
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Fatalf("expected generic error page")
	}
}

func TestSlowCMSRendersFallbackHome(t *testing.T) {
	srv := strapitest.New(t)
	cfg := srv.Config()
	cfg.Timeout = 300 * time.Millisecond
	srv.Delay(strapi.ResourceHomepageHero, 2*time.Second)

	client := strapi.New(cfg, nil)
	site := NewSite(
		pages.NewService(client, fallback.Default()),
		views.New(routes.New("https://www.example.com", srv.URL), richtext.NewRenderer()),
		client,
		WithRequestTimeout(cfg.Timeout),
	)
	handler, err := site.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	rec := doRequest(t, handler, http.MethodGet, "/", nil, http.StatusOK)
	if !strings.Contains(rec.Body.String(), fallback.Default().Hero().Title) {
		t.Fatalf("expected fallback hero in body")
	}
	if got := rec.Header().Get(HeaderContentFallback); !strings.Contains(got, "hero") {
		t.Fatalf("expected hero in fallback header, got %q", got)
	}
}

func TestSlowSubmitRendersBanner(t *testing.T) {
	_, handler, srv := setupSite(t, WithRequestTimeout(RequestTimeoutFor(100*time.Millisecond)), WithFormTimings(100*time.Millisecond, 0))
	srv.Delay(strapi.ResourceFormSubmissions, time.Second)

	rec := doRequest(t, handler, http.MethodPost, "/newsletter", url.Values{"email": {"reader@example.com"}}, http.StatusGatewayTimeout)
	if !strings.Contains(rec.Body.String(), `data-code="FORM_CONTEXT_TIMEOUT"`) {
		t.Fatalf("expected inline timeout banner, got %q", rec.Body.String())
	}
}

func TestRequestTimeoutFor(t *testing.T) {
	if got := RequestTimeoutFor(3 * time.Second); got != 3*time.Second+RenderBudget {
		t.Fatalf("expected render budget over the cms timeout, got %s", got)
	}
	if got := RequestTimeoutFor(0); got != DefaultRequestTimeout {
		t.Fatalf("expected default timeout, got %s", got)
	}
}

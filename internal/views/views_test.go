package views_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/forms"
	"github.com/goliatone/go-consulting-site/internal/pages"
	"github.com/goliatone/go-consulting-site/internal/pagination"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/routes"
	"github.com/goliatone/go-consulting-site/internal/views"
)

var fixedNow = time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)

func newView() *views.View {
	return views.New(routes.New("https://www.example.com", "https://cms.example.com"), richtext.NewRenderer(),
		views.WithClock(func() time.Time { return fixedNow }))
}

func chrome() pages.Chrome {
	store := fallback.Default()
	return pages.Chrome{Settings: store.Settings(), Navigation: store.Navigation()}
}

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := views.Render(&b, node); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func expectContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q", fragment)
		}
	}
}

func TestHomePageLayout(t *testing.T) {
	store := fallback.Default()
	page := pages.Home{
		Chrome:       chrome(),
		Hero:         store.Hero(),
		Stats:        store.Stats(),
		Services:     store.Services(),
		Testimonials: store.Testimonials(),
	}
	html := render(t, newView().HomePage(page))

	expectContains(t, html,
		"<!doctype html>",
		"<title>Meridian Advisory</title>",
		`rel="canonical" href="https://www.example.com`,
		store.Hero().Title,
		store.Services()[0].Name,
		`id="newsletter-form"`,
		"/newsletter",
		"© 2024 Meridian Advisory.",
	)
}

func TestFormStates(t *testing.T) {
	v := newView()

	submitting := render(t, v.ContactForm(forms.Snapshot{
		State:  forms.StateSubmitting,
		Values: map[string]string{"name": "Ada"},
	}))
	expectContains(t, submitting, "Sending…", `value="Ada"`, "disabled")

	failed := render(t, v.ContactForm(forms.Snapshot{
		State:       forms.StateError,
		Values:      map[string]string{"name": "Ada", "email": "nope"},
		FieldErrors: map[string]string{"email": "must be a valid email address"},
		Banner:      "Please correct the highlighted fields.",
		Code:        forms.TextCodeValidationFailed,
	}))
	expectContains(t, failed,
		`class="alert alert-error"`,
		"Please correct the highlighted fields.",
		"must be a valid email address",
		`aria-invalid="true"`,
		`value="nope"`,
	)
	if strings.Contains(failed, "disabled") {
		t.Fatalf("expected submit to be enabled after an error")
	}

	succeeded := render(t, v.ContactForm(forms.Snapshot{State: forms.StateSuccess, Banner: "Thanks, we will be in touch."}))
	expectContains(t, succeeded, `class="alert alert-success"`, "Thanks, we will be in touch.")

	idle := render(t, v.ContactForm(forms.Snapshot{}))
	if strings.Contains(idle, "alert") {
		t.Fatalf("expected no banner while idle")
	}
}

func TestCareerFormCarriesJob(t *testing.T) {
	job := fallback.Default().Jobs()[0]
	html := render(t, newView().CareerForm(job, forms.Snapshot{}))
	expectContains(t, html,
		`name="jobId" value="`+job.DocumentID+`"`,
		"/careers/"+job.DocumentID+"/apply",
		`name="resumeUrl"`,
	)
}

func TestConsultationFormListsServices(t *testing.T) {
	services := fallback.Default().Services()
	html := render(t, newView().ConsultationForm(services, forms.Snapshot{Values: map[string]string{"service": services[0].Name}}))
	expectContains(t, html, `<select`, `name="service"`, "Other", "selected")
}

func TestEntryPageNotFound(t *testing.T) {
	html := render(t, newView().EntryPage(pages.EntryDetail{
		Chrome:     chrome(),
		Collection: content.CollectionBlogs,
		Slug:       "missing",
		Outcome:    fallback.NotFound,
	}))
	expectContains(t, html, "Blog not found", "Back to Blogs", "/insights/blogs", `content="noindex"`)
}

func TestEntryPageCaseStudy(t *testing.T) {
	study := fallback.Default().CaseStudies()[0]
	html := render(t, newView().EntryPage(pages.EntryDetail{
		Chrome:     chrome(),
		Collection: content.CollectionCaseStudies,
		Slug:       study.Slug,
		Entry:      study.Entry,
		CaseStudy:  &study,
		Outcome:    fallback.FromFallback,
	}))
	expectContains(t, html, `class="case-study"`, "min read", "/insights/case-studies")
}

func TestListingPager(t *testing.T) {
	items := make([]content.Entry, 0, 8)
	for i := 1; i <= 8; i++ {
		items = append(items, content.Entry{Title: fmt.Sprintf("Post %d", i), Slug: fmt.Sprintf("post-%d", i)})
	}
	html := render(t, newView().ListingPage(pages.Listing{
		Chrome:     chrome(),
		Collection: content.CollectionArticles,
		Categories: []string{"Operations", "Strategy"},
		Page:       pagination.Paginate(items, 2, 3),
	}))
	expectContains(t, html, "Post 4", "Post 6", "Previous", "Next", "page=3", `aria-current="page"`, "category=Strategy")
	if strings.Contains(html, "Post 7") {
		t.Fatalf("expected only the second page")
	}
}

func TestJobCardPostedAgo(t *testing.T) {
	job := content.Job{
		DocumentID: "job-1",
		Title:      "Senior Consultant",
		Location:   "Remote",
		JobType:    content.JobFullTime,
		CreatedAt:  content.NewDate(fixedNow.Add(-72 * time.Hour)),
	}
	html := render(t, newView().JobCard(job))
	expectContains(t, html, "Posted 3 days ago", "Remote · Full Time", "/careers/job-1")
}

func TestTextIsEscaped(t *testing.T) {
	html := render(t, newView().EntryCard(content.CollectionBlogs, content.Entry{
		Title: `<script>alert("x")</script>`,
		Slug:  "x",
	}))
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected title to be escaped")
	}
}

func TestAboutPageRendersDescription(t *testing.T) {
	html := render(t, newView().AboutPage(pages.About{
		Chrome:      chrome(),
		Overview:    content.AboutOverview{Title: "About us"},
		Description: richtext.Markdown("We help **leaders** move."),
	}))
	expectContains(t, html, "<strong>leaders</strong>", "About us")
}

func TestErrorPage(t *testing.T) {
	html := render(t, newView().ErrorPage(pages.Chrome{}))
	expectContains(t, html, "Something went wrong", `content="noindex"`)
}

func TestHeroBackgroundURLStaysInAttribute(t *testing.T) {
	store := fallback.Default()
	hero := store.Hero()
	hero.BackgroundImage = &content.Media{URL: "https://cdn.example.com/a');color:red;x:url('b.png"}
	html := render(t, newView().HomePage(pages.Home{Chrome: chrome(), Hero: hero}))

	if strings.Contains(html, "url('https://cdn.example.com") {
		t.Fatalf("expected no inline css url for the hero background")
	}
	expectContains(t, html,
		`class="hero-background"`,
		`src="https://cdn.example.com/a&#39;);color:red;x:url(&#39;b.png"`,
	)
}

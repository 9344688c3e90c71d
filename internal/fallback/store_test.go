package fallback

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

func TestDefaultStoreIsComplete(t *testing.T) {
	store := Default()

	if store.Settings().SiteName == "" || store.Hero().Title == "" {
		t.Fatalf("expected site settings and hero")
	}
	if len(store.Navigation().Items) == 0 {
		t.Fatalf("expected navigation items")
	}
	if store.About().Description.Kind() != richtext.KindMarkdown {
		t.Fatalf("expected markdown about description, got %s", store.About().Description.Kind())
	}

	for _, collection := range content.Collections() {
		entries := store.Entries(collection)
		if len(entries) == 0 {
			t.Fatalf("expected fallback entries for %s", collection)
		}
		for _, item := range entries {
			entry := item.Base()
			if entry.Title == "" || entry.Excerpt == "" || entry.Slug == "" {
				t.Fatalf("incomplete %s entry: %+v", collection, entry)
			}
			if entry.FeaturedImage == nil || entry.FeaturedImage.URL == "" {
				t.Fatalf("%s/%s has no image", collection, entry.Slug)
			}
			if entry.DocumentID == "" || entry.ID <= 0 {
				t.Fatalf("%s/%s has no identity", collection, entry.Slug)
			}
			if entry.Content.Kind() != richtext.KindMarkdown {
				t.Fatalf("%s/%s body should be markdown", collection, entry.Slug)
			}
		}
		if store.StockImage(collection) == "" {
			t.Fatalf("expected stock image for %s", collection)
		}
	}

	for _, job := range store.Jobs() {
		if job.DocumentID == "" || !job.JobType.Valid() {
			t.Fatalf("incomplete job %+v", job)
		}
		if found, ok := store.Job(job.DocumentID); !ok || found.Title != job.Title {
			t.Fatalf("expected to find job %s by document id", job.DocumentID)
		}
	}
}

func TestEntriesAreNewestFirst(t *testing.T) {
	blogs := Default().Blogs()
	for i := 1; i < len(blogs); i++ {
		if blogs[i].PublicationDate.After(blogs[i-1].PublicationDate.Time) {
			t.Fatalf("blogs out of order at %d", i)
		}
	}
}

func TestLatestInsightsTriplet(t *testing.T) {
	latest := Default().LatestInsights()
	if len(latest) != 3 {
		t.Fatalf("expected 3 latest insights, got %d", len(latest))
	}
	want := []content.Collection{content.CollectionBlogs, content.CollectionArticles, content.CollectionCaseStudies}
	for i, insight := range latest {
		if insight.Collection != want[i] {
			t.Fatalf("latest[%d]: expected %s, got %s", i, want[i], insight.Collection)
		}
		if insight.Entry.Title == "" {
			t.Fatalf("latest[%d] has no title", i)
		}
	}
	if latest[0].Entry.Slug != "five-signs-your-operating-model-has-stalled" {
		t.Fatalf("unexpected first slug %q", latest[0].Entry.Slug)
	}
}

func TestCaseStudyFrontMatterSections(t *testing.T) {
	study, ok := Default().CaseStudy("halving-fulfilment-time-for-a-dtc-brand")
	if !ok {
		t.Fatalf("expected case study")
	}
	if study.ClientName != "Northwind Outfitters" {
		t.Fatalf("unexpected client %q", study.ClientName)
	}
	if !strings.Contains(study.Results.Source(), "1.8 days") {
		t.Fatalf("expected results section, got %q", study.Results.Source())
	}
	if string(study.Author) != "Priya Nair" {
		t.Fatalf("unexpected author %q", study.Author)
	}
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	store := Default()
	if _, ok := store.Service("Strategy-And-Growth"); !ok {
		t.Fatalf("expected service lookup to ignore case")
	}
	if _, ok := store.Industry("healthcare"); !ok {
		t.Fatalf("expected industry lookup")
	}
	if _, ok := store.Article("missing"); ok {
		t.Fatalf("did not expect a match for an unknown slug")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := Default()
	services := store.Services()
	services[0].Name = "mutated"
	if store.Services()[0].Name == "mutated" {
		t.Fatalf("expected accessor to return a copy")
	}
}

const minimalSite = `
settings:
  siteName: Test
latest:
  - collection: blogs
    slug: only
  - collection: blogs
    slug: only
  - collection: blogs
    slug: missing
`

const minimalPost = `---
title: Only post
excerpt: The only post.
publicationDate: 2024-01-01
featuredImage:
  url: https://example.com/a.png
---
Body.
`

func TestLoadRejectsUnknownLatestRef(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml":              {Data: []byte(minimalSite)},
		"insights/blogs/only.md": {Data: []byte(minimalPost)},
	}
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "blogs/missing") {
		t.Fatalf("expected unknown ref error, got %v", err)
	}
}

func TestLoadRejectsIncompleteEntries(t *testing.T) {
	post := strings.Replace(minimalPost, "excerpt: The only post.\n", "", 1)
	fsys := fstest.MapFS{
		"site.yaml":              {Data: []byte(minimalSite)},
		"insights/blogs/only.md": {Data: []byte(post)},
	}
	_, err := Load(fsys)
	if err == nil || !strings.Contains(err.Error(), "excerpt") {
		t.Fatalf("expected excerpt validation error, got %v", err)
	}
}

func TestCollectionPolicy(t *testing.T) {
	literal := []string{"fallback"}

	got, origin := Collection(strapi.Envelope[[]string]{Data: []string{"cms"}}, literal)
	if origin != OriginCMS || got[0] != "cms" {
		t.Fatalf("expected cms data, got %v (%s)", got, origin)
	}
	got, origin = Collection(strapi.Envelope[[]string]{Data: []string{}}, literal)
	if origin != OriginFallback || got[0] != "fallback" {
		t.Fatalf("expected fallback for empty data, got %v (%s)", got, origin)
	}
	got, origin = Collection(strapi.Envelope[[]string]{Error: "boom"}, literal)
	if origin != OriginFallback || got[0] != "fallback" {
		t.Fatalf("expected fallback for failed read, got %v (%s)", got, origin)
	}
}

func TestSinglePolicy(t *testing.T) {
	hero := content.HomepageHero{Title: "from cms"}
	got, origin := Single(strapi.Envelope[*content.HomepageHero]{Data: &hero}, content.HomepageHero{Title: "literal"})
	if origin != OriginCMS || got.Title != "from cms" {
		t.Fatalf("expected cms hero, got %+v", got)
	}
	got, origin = Single(strapi.Envelope[*content.HomepageHero]{}, content.HomepageHero{Title: "literal"})
	if origin != OriginFallback || got.Title != "literal" {
		t.Fatalf("expected literal hero, got %+v", got)
	}
}

func TestDetailPolicy(t *testing.T) {
	store := Default()
	lookup := func(slug string) func() (content.Blog, bool) {
		return func() (content.Blog, bool) { return store.Blog(slug) }
	}

	cms := content.Blog{Entry: content.Entry{Slug: "cms-only", Title: "CMS"}}
	got, outcome := Detail(strapi.Envelope[[]content.Blog]{Data: []content.Blog{cms}}, lookup("cms-only"))
	if outcome != FromCMS || got.Title != "CMS" {
		t.Fatalf("expected cms detail, got %s", outcome)
	}

	known := "five-signs-your-operating-model-has-stalled"
	got, outcome = Detail(strapi.Envelope[[]content.Blog]{Data: []content.Blog{}}, lookup(known))
	if outcome != FromFallback || got.Slug != known {
		t.Fatalf("expected fallback detail for known slug, got %s", outcome)
	}

	_, outcome = Detail(strapi.Envelope[[]content.Blog]{Data: []content.Blog{}}, lookup("nope"))
	if outcome != NotFound || outcome.Found() {
		t.Fatalf("expected not found, got %s", outcome)
	}

	_, outcome = Detail(strapi.Envelope[[]content.Blog]{Error: "timeout"}, lookup(known))
	if outcome != FromFallback {
		t.Fatalf("expected failed read to use fallback, got %s", outcome)
	}
}

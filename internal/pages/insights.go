package pages

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/pagination"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

// ErrUnknownCollection is returned for a collection segment that is not one
// of blogs, articles or case-studies.
var ErrUnknownCollection = errors.New("pages: unknown insight collection")

// readEntries lists one collection and applies the fallback policy. A
// positive limit also bounds the fallback list.
func (s *Service) readEntries(ctx context.Context, collection content.Collection, opts strapi.ListOptions) ([]content.Entry, fallback.Origin) {
	switch collection {
	case content.CollectionBlogs:
		items, origin := fallback.Collection(s.reader.ListBlogs(ctx, opts), s.store.Blogs())
		return head(entries(items), opts.Limit), origin
	case content.CollectionArticles:
		items, origin := fallback.Collection(s.reader.ListArticles(ctx, opts), s.store.Articles())
		return head(entries(items), opts.Limit), origin
	case content.CollectionCaseStudies:
		items, origin := fallback.Collection(s.reader.ListCaseStudies(ctx, opts), s.store.CaseStudies())
		return head(entries(items), opts.Limit), origin
	default:
		return nil, fallback.OriginFallback
	}
}

// InsightsLanding shows the newest items of each collection side by side.
func (s *Service) InsightsLanding(ctx context.Context) (InsightsLanding, error) {
	var (
		chrome  chromeReads
		results [3][]content.Entry
		origins [3]fallback.Origin
	)
	latest := strapi.Latest(landingPerCollection)
	tasks := chrome.tasks(s.reader)
	for i, collection := range content.Collections() {
		tasks = append(tasks, func(ctx context.Context) {
			results[i], origins[i] = s.readEntries(ctx, collection, latest)
		})
	}
	if err := settle(ctx, tasks...); err != nil {
		return InsightsLanding{}, err
	}

	page := InsightsLanding{
		Chrome:      s.chrome(&chrome),
		Blogs:       results[0],
		Articles:    results[1],
		CaseStudies: results[2],
	}
	for i, collection := range content.Collections() {
		page.note(string(collection), origins[i])
	}
	return page, nil
}

// Listing returns page number of collection, narrowed to category when it
// is not blank. Out of range page numbers are clamped.
func (s *Service) Listing(ctx context.Context, collection content.Collection, category string, number int) (Listing, error) {
	if collection.Label() == "" {
		return Listing{}, ErrUnknownCollection
	}
	var (
		chrome chromeReads
		all    []content.Entry
		origin fallback.Origin
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) { all, origin = s.readEntries(ctx, collection, strapi.ListOptions{}) },
	)
	if err := settle(ctx, tasks...); err != nil {
		return Listing{}, err
	}

	category = strings.TrimSpace(category)
	page := Listing{
		Chrome:     s.chrome(&chrome),
		Collection: collection,
		Category:   category,
		Categories: categories(all),
	}
	page.note(string(collection), origin)

	filtered := all
	if category != "" {
		filtered = slices.DeleteFunc(slices.Clone(all), func(entry content.Entry) bool {
			return !strings.EqualFold(strings.TrimSpace(entry.Category), category)
		})
	}
	page.Page = pagination.Paginate(filtered, number, s.pageSize)
	return page, nil
}

// Entry loads one blog, article or case study by slug together with a few
// related items from the same collection.
func (s *Service) Entry(ctx context.Context, collection content.Collection, slug string) (EntryDetail, error) {
	slug = strings.TrimSpace(slug)
	var (
		chrome  chromeReads
		related []content.Entry
		resolve func(page *EntryDetail)
	)
	tasks := append(chrome.tasks(s.reader),
		func(ctx context.Context) {
			related, _ = s.readEntries(ctx, collection, strapi.Latest(relatedLimit+1))
		},
	)

	switch collection {
	case content.CollectionBlogs:
		var env strapi.Envelope[[]content.Blog]
		tasks = append(tasks, func(ctx context.Context) { env = s.reader.GetBlog(ctx, slug) })
		resolve = func(page *EntryDetail) {
			blog, outcome := fallback.Detail(env, func() (content.Blog, bool) { return s.store.Blog(slug) })
			page.Entry, page.Outcome = blog.Entry, outcome
		}
	case content.CollectionArticles:
		var env strapi.Envelope[[]content.Article]
		tasks = append(tasks, func(ctx context.Context) { env = s.reader.GetArticle(ctx, slug) })
		resolve = func(page *EntryDetail) {
			article, outcome := fallback.Detail(env, func() (content.Article, bool) { return s.store.Article(slug) })
			page.Entry, page.Outcome = article.Entry, outcome
			if outcome.Found() {
				page.Article = &article
			}
		}
	case content.CollectionCaseStudies:
		var env strapi.Envelope[[]content.CaseStudy]
		tasks = append(tasks, func(ctx context.Context) { env = s.reader.GetCaseStudy(ctx, slug) })
		resolve = func(page *EntryDetail) {
			study, outcome := fallback.Detail(env, func() (content.CaseStudy, bool) { return s.store.CaseStudy(slug) })
			page.Entry, page.Outcome = study.Entry, outcome
			if outcome.Found() {
				page.CaseStudy = &study
			}
		}
	default:
		return EntryDetail{}, ErrUnknownCollection
	}

	if err := settle(ctx, tasks...); err != nil {
		return EntryDetail{}, err
	}

	page := EntryDetail{Chrome: s.chrome(&chrome), Collection: collection, Slug: slug}
	resolve(&page)
	page.noteOutcome(string(collection), page.Outcome)
	if page.Outcome.Found() {
		page.Related = head(slices.DeleteFunc(related, func(entry content.Entry) bool {
			return strings.EqualFold(entry.Slug, page.Entry.Slug)
		}), relatedLimit)
	}
	s.log(ctx, "insights.entry").Debug("pages.detail",
		"collection", string(collection), "slug", slug, "outcome", page.Outcome.String())
	return page, nil
}

func entries[T content.Item](items []T) []content.Entry {
	out := make([]content.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item.Base())
	}
	return out
}

func head[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// categories lists the distinct categories of items, sorted, keeping the
// first spelling seen.
func categories(items []content.Entry) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		key := strings.ToLower(category)
		if category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, category)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return out
}

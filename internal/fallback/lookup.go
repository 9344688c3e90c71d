package fallback

import (
	"slices"
	"strings"

	"github.com/goliatone/go-consulting-site/internal/content"
)

func (s *Store) Settings() content.GlobalSettings { return s.settings }
func (s *Store) Navigation() content.Navigation   { return s.navigation }
func (s *Store) Hero() content.HomepageHero       { return s.hero }
func (s *Store) Stats() content.HomepageStats     { return s.stats }
func (s *Store) About() content.AboutOverview     { return s.about }

func (s *Store) Team() []content.TeamMember          { return slices.Clone(s.team) }
func (s *Store) Jobs() []content.Job                 { return slices.Clone(s.jobs) }
func (s *Store) Services() []content.Service         { return slices.Clone(s.services) }
func (s *Store) Industries() []content.Industry      { return slices.Clone(s.industries) }
func (s *Store) Testimonials() []content.Testimonial { return slices.Clone(s.testimonials) }
func (s *Store) Blogs() []content.Blog               { return slices.Clone(s.blogs) }
func (s *Store) Articles() []content.Article         { return slices.Clone(s.articles) }
func (s *Store) CaseStudies() []content.CaseStudy    { return slices.Clone(s.caseStudies) }
func (s *Store) LatestInsights() []Insight           { return slices.Clone(s.latest) }

// Job finds a fallback job by document id.
func (s *Store) Job(documentID string) (content.Job, bool) {
	return find(s.jobs, func(j content.Job) bool { return j.DocumentID == documentID })
}

func (s *Store) Service(slug string) (content.Service, bool) {
	return find(s.services, func(v content.Service) bool { return sameSlug(v.Slug, slug) })
}

func (s *Store) Industry(slug string) (content.Industry, bool) {
	return find(s.industries, func(v content.Industry) bool { return sameSlug(v.Slug, slug) })
}

func (s *Store) Blog(slug string) (content.Blog, bool) {
	return find(s.blogs, func(v content.Blog) bool { return sameSlug(v.Slug, slug) })
}

func (s *Store) Article(slug string) (content.Article, bool) {
	return find(s.articles, func(v content.Article) bool { return sameSlug(v.Slug, slug) })
}

func (s *Store) CaseStudy(slug string) (content.CaseStudy, bool) {
	return find(s.caseStudies, func(v content.CaseStudy) bool { return sameSlug(v.Slug, slug) })
}

// Entry finds an insight in any collection by slug.
func (s *Store) Entry(collection content.Collection, slug string) (content.Item, bool) {
	switch collection {
	case content.CollectionBlogs:
		if v, ok := s.Blog(slug); ok {
			return v, true
		}
	case content.CollectionArticles:
		if v, ok := s.Article(slug); ok {
			return v, true
		}
	case content.CollectionCaseStudies:
		if v, ok := s.CaseStudy(slug); ok {
			return v, true
		}
	}
	return nil, false
}

// Entries lists the fallback insights of one collection, newest first.
func (s *Store) Entries(collection content.Collection) []content.Item {
	switch collection {
	case content.CollectionBlogs:
		return items(s.blogs)
	case content.CollectionArticles:
		return items(s.articles)
	case content.CollectionCaseStudies:
		return items(s.caseStudies)
	default:
		return nil
	}
}

// StockImage is the image used for an insight that has none of its own.
func (s *Store) StockImage(collection content.Collection) string {
	return s.stockImages[collection]
}

func find[T any](values []T, match func(T) bool) (T, bool) {
	for _, v := range values {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func items[T content.Item](values []T) []content.Item {
	out := make([]content.Item, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func sameSlug(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

package pages

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

// Search matches term against the title and excerpt of every blog, article
// and case study. Matching ignores case and diacritics. A blank term
// returns no results and reads only the layout content.
func (s *Service) Search(ctx context.Context, term string) (Search, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		chrome, err := s.Chrome(ctx)
		if err != nil {
			return Search{}, err
		}
		return Search{Chrome: chrome}, nil
	}

	var (
		chrome  chromeReads
		results [3][]content.Entry
		origins [3]fallback.Origin
	)
	tasks := chrome.tasks(s.reader)
	for i, collection := range content.Collections() {
		tasks = append(tasks, func(ctx context.Context) {
			results[i], origins[i] = s.readEntries(ctx, collection, strapi.ListOptions{})
		})
	}
	if err := settle(ctx, tasks...); err != nil {
		return Search{}, err
	}

	page := Search{Chrome: s.chrome(&chrome), Term: term}
	matcher := search.New(language.English, search.Loose)
	for i, collection := range content.Collections() {
		page.note(string(collection), origins[i])
		for _, entry := range results[i] {
			if matchesEntry(matcher, entry, term) {
				page.Results = append(page.Results, SearchResult{Collection: collection, Entry: entry})
			}
		}
	}
	slices.SortStableFunc(page.Results, func(a, b SearchResult) int {
		return b.Entry.PublicationDate.Compare(a.Entry.PublicationDate.Time)
	})
	s.log(ctx, "search").Debug("pages.search", "term", term, "results", len(page.Results))
	return page, nil
}

func matchesEntry(matcher *search.Matcher, entry content.Entry, term string) bool {
	if start, _ := matcher.IndexString(entry.Title, term); start >= 0 {
		return true
	}
	start, _ := matcher.IndexString(entry.Excerpt, term)
	return start >= 0
}

// Package insights aggregates the newest blogs, articles and case studies
// into the three cards shown on the home page and served by
// /api/insights/latest.
package insights

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/fallback"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/strapi"
)

const (
	// PerCollection is how many items are read from each collection.
	PerCollection = 2
	// Limit is the size of the result.
	Limit = 3

	excerptWidth = 160
)

// Reader is the part of the content client the service needs.
type Reader interface {
	ListBlogs(ctx context.Context, opts strapi.ListOptions) strapi.Envelope[[]content.Blog]
	ListArticles(ctx context.Context, opts strapi.ListOptions) strapi.Envelope[[]content.Article]
	ListCaseStudies(ctx context.Context, opts strapi.ListOptions) strapi.Envelope[[]content.CaseStudy]
}

// Item is the normalised card shape.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
	Slug        string `json:"slug"`

	Collection content.Collection `json:"-"`
	Published  time.Time          `json:"-"`
}

// Service builds the latest insights list.
type Service struct {
	reader   Reader
	store    *fallback.Store
	renderer *richtext.Renderer
	logger   logging.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRenderer(renderer *richtext.Renderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// NewService wires a service. A nil store uses fallback.Default().
func NewService(reader Reader, store *fallback.Store, opts ...Option) *Service {
	if store == nil {
		store = fallback.Default()
	}
	s := &Service{
		reader:   reader,
		store:    store,
		renderer: richtext.NewRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Latest returns up to Limit items, newest first, padded with the fallback
// triplet. Collection failures only remove that collection's items.
func (s *Service) Latest(ctx context.Context) []Item {
	var (
		wg          sync.WaitGroup
		blogs       []Item
		articles    []Item
		caseStudies []Item
	)
	latest := strapi.Latest(PerCollection)
	if s.reader != nil {
		wg.Add(3)
		go s.collect(ctx, &wg, content.CollectionBlogs, &blogs, func() []Item {
			return normalizeAll(s, content.CollectionBlogs, s.reader.ListBlogs(ctx, latest).Data)
		})
		go s.collect(ctx, &wg, content.CollectionArticles, &articles, func() []Item {
			return normalizeAll(s, content.CollectionArticles, s.reader.ListArticles(ctx, latest).Data)
		})
		go s.collect(ctx, &wg, content.CollectionCaseStudies, &caseStudies, func() []Item {
			return normalizeAll(s, content.CollectionCaseStudies, s.reader.ListCaseStudies(ctx, latest).Data)
		})
		wg.Wait()
	}

	items := make([]Item, 0, len(blogs)+len(articles)+len(caseStudies))
	items = append(items, blogs...)
	items = append(items, articles...)
	items = append(items, caseStudies...)
	slices.SortStableFunc(items, func(a, b Item) int {
		return b.Published.Compare(a.Published)
	})
	if len(items) > Limit {
		items = items[:Limit]
	}
	fetched := len(items)
	items = s.pad(items)

	logging.FromContext(ctx, s.logger).Debug("insights.latest", "fetched", fetched, "padded", len(items)-fetched)
	return items
}

// collect stores read() in dst. A panicking read contributes no items.
func (s *Service) collect(ctx context.Context, wg *sync.WaitGroup, collection content.Collection, dst *[]Item, read func() []Item) {
	defer wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			logging.FromContext(ctx, s.logger).Error("insights.latest.panic", "collection", string(collection), "panic", rec)
			*dst = nil
		}
	}()
	*dst = read()
}

// Fallback returns the literal triplet on its own.
func (s *Service) Fallback() []Item {
	return s.pad(make([]Item, 0, Limit))
}

func (s *Service) pad(items []Item) []Item {
	for _, insight := range s.store.LatestInsights() {
		if len(items) >= Limit {
			break
		}
		if containsSlug(items, insight.Collection, insight.Entry.Slug) {
			continue
		}
		items = append(items, s.normalize(insight.Collection, insight.Entry))
	}
	return items
}

func normalizeAll[T content.Item](s *Service, collection content.Collection, records []T) []Item {
	out := make([]Item, 0, len(records))
	for _, record := range records {
		out = append(out, s.normalize(collection, record.Base()))
	}
	return out
}

func (s *Service) normalize(collection content.Collection, entry content.Entry) Item {
	item := Item{
		ID:          entry.DocumentID,
		Title:       entry.Title,
		Excerpt:     strings.TrimSpace(entry.Excerpt),
		Category:    strings.TrimSpace(entry.Category),
		Author:      strings.TrimSpace(string(entry.Author)),
		PublishDate: entry.PublicationDate.String(),
		Slug:        entry.Slug,
		Collection:  collection,
		Published:   entry.PublicationDate.Time,
	}
	if item.ID == "" {
		item.ID = string(collection) + "-" + strconv.Itoa(entry.ID)
	}
	if item.Excerpt == "" {
		item.Excerpt = s.renderer.Excerpt(entry.Content, excerptWidth)
	}
	if item.Category == "" {
		item.Category = collection.Label()
	}
	if entry.FeaturedImage != nil && entry.FeaturedImage.URL != "" {
		item.Image = entry.FeaturedImage.URL
	} else {
		item.Image = s.store.StockImage(collection)
	}
	return item
}

func containsSlug(items []Item, collection content.Collection, slug string) bool {
	for _, item := range items {
		if item.Collection == collection && strings.EqualFold(item.Slug, slug) {
			return true
		}
	}
	return false
}

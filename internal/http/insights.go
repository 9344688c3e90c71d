package http

import (
	"context"
	"net/http"

	"github.com/goliatone/go-consulting-site/internal/insights"
)

// handleLatestInsights always answers 200 with zero to three items. Any
// failure while building the feed is answered with the fallback triplet.
func (s *Site) handleLatestInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.latestInsights(r.Context()))
}

func (s *Site) latestInsights(ctx context.Context) (items []insights.Item) {
	feed := s.pages.Insights()
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("http.latest_insights.panic", "panic", rec)
			items = feed.Fallback()
		}
	}()
	items = feed.Latest(ctx)
	if items == nil {
		items = []insights.Item{}
	}
	return items
}

package fetcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/filter"
	"github.com/scipunch/newswire/metrics"
	"github.com/scipunch/newswire/parser"
)

// Fetcher turns one configured feed into normalized articles. It never
// returns an error: any failure yields an empty list.
type Fetcher struct {
	feeds    types.FeedFetcher
	filter   *filter.Filter
	location *time.Location
}

// New creates a Fetcher. A nil filter keeps every item.
func New(feeds types.FeedFetcher, f *filter.Filter, loc *time.Location) *Fetcher {
	if loc == nil {
		loc = time.UTC
	}
	return &Fetcher{feeds: feeds, filter: f, location: loc}
}

// FetchFeed fetches src, drops filtered items and maps the rest into
// articles in feed order.
func (f *Fetcher) FetchFeed(ctx context.Context, src types.FeedSource) []types.Article {
	start := time.Now()

	feed, err := f.feeds.Fetch(ctx, src.URL)
	if err != nil {
		metrics.RecordFeedFetch("error", time.Since(start))
		slog.Warn("failed to fetch feed", "source", src.Label, "url", src.URL, "error", err)
		return []types.Article{}
	}

	articles := make([]types.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		// Rules apply to the text the article will carry, not the raw markup
		plain := parser.Normalized(item)
		if plain.Title == "" {
			metrics.RecordFiltered("empty_title")
			slog.Debug("item without title skipped", "source", src.Label, "link", item.Link)
			continue
		}
		if f.filter != nil {
			if reject, reason := f.filter.ShouldReject(plain); reject {
				metrics.RecordFiltered(reason)
				slog.Debug("item filtered out", "source", src.Label, "title", plain.Title, "reason", reason)
				continue
			}
		}
		if item.Link == "" {
			slog.Debug("item without link skipped", "source", src.Label, "title", item.Title)
			continue
		}
		articles = append(articles, parser.ToArticle(item, src, f.location))
	}

	status := "ok"
	if len(articles) == 0 {
		status = "empty"
	}
	metrics.RecordFeedFetch(status, time.Since(start))
	slog.Info("feed fetched", "source", src.Label, "total", len(feed.Items), "after_filtering", len(articles))

	return articles
}

// Package aggregator fans a feed list out to the fetcher and merges the
// results into one list, newest first.
package aggregator

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/scipunch/newswire/fetcher/types"
)

// FeedFetcher fetches one feed and never fails; a broken feed yields no
// articles.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, src types.FeedSource) []types.Article
}

type Aggregator struct {
	fetcher        FeedFetcher
	maxConcurrency int
}

// New creates an Aggregator. maxConcurrency <= 0 runs every feed at once.
func New(fetcher FeedFetcher, maxConcurrency int) *Aggregator {
	return &Aggregator{fetcher: fetcher, maxConcurrency: maxConcurrency}
}

// Aggregate fetches all sources concurrently and waits for every one of
// them. Failed or empty feeds contribute nothing. The result is sorted by
// publish time descending; undated articles go last in feed order.
func (a *Aggregator) Aggregate(ctx context.Context, sources []types.FeedSource) []types.Article {
	slog.Debug("fetching feeds", "count", len(sources))

	results := make([][]types.Article, len(sources))

	// A plain Group: one feed failing must not cancel the others.
	var g errgroup.Group
	if a.maxConcurrency > 0 {
		g.SetLimit(a.maxConcurrency)
	}
	for i, src := range sources {
		g.Go(func() error {
			results[i] = a.fetcher.FetchFeed(ctx, src)
			return nil
		})
	}
	_ = g.Wait()

	var (
		total      int
		successful int
	)
	for _, r := range results {
		if len(r) > 0 {
			successful++
		}
		total += len(r)
	}
	slog.Info("feeds fetched", "successful", successful, "failed_or_empty", len(sources)-successful, "articles", total)

	articles := make([]types.Article, 0, total)
	for _, r := range results {
		articles = append(articles, r...)
	}
	SortByPublished(articles)
	return articles
}

// SortByPublished orders articles newest first. The sort is stable and
// articles without a publish time keep their relative order at the end.
func SortByPublished(articles []types.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i].Published, articles[j].Published
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
}

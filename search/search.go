// Package search ranks cached and freshly fetched articles against a query.
package search

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/metrics"
)

var ErrEmptyTerm = errors.New("search term is empty")

// Pool exposes every article currently held by the cache
type Pool interface {
	Pool() []types.Article
}

type Aggregator interface {
	Aggregate(ctx context.Context, sources []types.FeedSource) []types.Article
}

// ScoredArticle is an article with its relevance for one query
type ScoredArticle struct {
	types.Article
	RelevanceScore int `json:"relevanceScore"`
}

type Result struct {
	Term     string
	Articles []ScoredArticle
}

type Engine struct {
	pool       Pool
	aggregator Aggregator
	catalog    config.Catalog
	cfg        config.SearchConfig
}

func NewEngine(pool Pool, aggregator Aggregator, catalog config.Catalog, cfg config.SearchConfig) *Engine {
	return &Engine{
		pool:       pool,
		aggregator: aggregator,
		catalog:    catalog,
		cfg:        cfg,
	}
}

// Search lowercases and trims term, merges the cache pool with a time-boxed
// fetch of every category and returns the matches ranked by score. Ties
// keep pool order.
func (e *Engine) Search(ctx context.Context, term string) (Result, error) {
	start := time.Now()
	defer func() { metrics.SearchDuration.Observe(time.Since(start).Seconds()) }()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Result{}, ErrEmptyTerm
	}

	candidates := e.pool.Pool()
	cachedCount := len(candidates)

	if e.cfg.Refresh != config.RefreshWhenEmpty || cachedCount == 0 {
		fresh := e.fetchAll(ctx)
		slog.Debug("search fetched fresh articles", "term", term, "fresh", len(fresh))
		candidates = append(candidates, fresh...)
	}
	candidates = Dedup(candidates)

	matches := make([]types.Article, 0)
	for _, a := range candidates {
		if Matches(a, term) {
			matches = append(matches, a)
		}
	}
	matches = Dedup(matches)

	scored := make([]ScoredArticle, len(matches))
	for i, a := range matches {
		scored[i] = ScoredArticle{Article: a, RelevanceScore: Score(a, term)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	slog.Info("search completed", "term", term, "cached", cachedCount, "candidates", len(candidates), "results", len(scored))
	return Result{Term: term, Articles: scored}, nil
}

// fetchAll re-aggregates a capped slice of every category's feeds. A
// category that errors or misses its deadline contributes nothing.
func (e *Engine) fetchAll(ctx context.Context) []types.Article {
	categories := e.catalog.Categories()
	results := make([][]types.Article, len(categories))

	var g errgroup.Group
	for i, category := range categories {
		g.Go(func() error {
			results[i] = e.fetchCategory(ctx, category)
			return nil
		})
	}
	_ = g.Wait()

	var fresh []types.Article
	for _, r := range results {
		fresh = append(fresh, r...)
	}
	return fresh
}

func (e *Engine) fetchCategory(ctx context.Context, category string) []types.Article {
	feeds := e.catalog[category]
	limit, ok := e.cfg.SourcesPerCategory[category]
	if !ok {
		limit = e.cfg.DefaultSources
	}
	if limit < len(feeds) {
		feeds = feeds[:limit]
	}
	if len(feeds) == 0 {
		return nil
	}

	// The fetch keeps running after a timeout; its result is discarded.
	done := make(chan []types.Article, 1)
	go func() {
		done <- e.aggregator.Aggregate(context.WithoutCancel(ctx), feeds)
	}()

	timer := time.NewTimer(e.cfg.CategoryTimeout.Duration)
	defer timer.Stop()

	select {
	case articles := <-done:
		return articles
	case <-timer.C:
		metrics.SearchCategoryTimeoutsTotal.WithLabelValues(category).Inc()
		slog.Warn("search category timed out", "category", category, "sources", len(feeds), "timeout", e.cfg.CategoryTimeout.Duration)
		return nil
	case <-ctx.Done():
		slog.Warn("search category abandoned", "category", category, "error", ctx.Err())
		return nil
	}
}

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/scipunch/newswire/aggregator"
	"github.com/scipunch/newswire/cache"
	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher"
	"github.com/scipunch/newswire/filter"
	"github.com/scipunch/newswire/search"
)

// app holds the wired pipeline shared by the commands
type app struct {
	catalog    config.Catalog
	cache      *cache.Cache
	store      *cache.SQLiteStore
	aggregator *aggregator.Aggregator
	engine     *search.Engine
}

func newApp(conf config.Config) (*app, error) {
	contentFilter, err := filter.New(conf.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize filter with %w", err)
	}

	rss := fetcher.NewRSSFetcher(conf.Fetch.Timeout.Duration, conf.Fetch.UserAgent)
	feeds := fetcher.New(rss, contentFilter, conf.Location())
	agg := aggregator.New(feeds, conf.Fetch.MaxConcurrency)

	a := &app{
		catalog:    conf.Catalog(),
		aggregator: agg,
	}

	var opts []cache.Option
	if conf.Cache.DatabasePath != "" {
		store, err := cache.NewSQLiteStore(conf.Cache.DatabasePath)
		if err != nil {
			// Persistence is optional, keep serving from memory
			slog.Warn("cache persistence disabled", "path", conf.Cache.DatabasePath, "error", err)
		} else {
			a.store = store
			opts = append(opts, cache.WithStore(store))
		}
	}
	a.cache = cache.New(conf.Cache.TTL.Duration, opts...)

	if n, err := a.cache.Restore(); err != nil {
		slog.Warn("failed to restore cache", "error", err)
	} else if n > 0 {
		slog.Info("cache restored", "entries", n)
	}

	a.engine = search.NewEngine(a.cache, agg, a.catalog, conf.Search)

	slog.Debug("pipeline initialized",
		"categories", len(a.catalog),
		"filter_keywords", len(conf.Filter.ExcludeKeywords),
		"cache_ttl", conf.Cache.TTL.Duration)
	return a, nil
}

func (a *app) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

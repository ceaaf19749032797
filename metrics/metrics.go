// Package metrics provides Prometheus metrics for newswire.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedFetchTotal counts feed fetches by outcome (ok, empty, error).
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "feed_fetch_total",
			Help:      "Total number of feed fetches",
		},
		[]string{"status"},
	)

	// FeedFetchDuration measures one feed's fetch and parse time.
	FeedFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newswire",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of feed fetch and parse in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// ItemsFilteredTotal counts items dropped by the content filter, by rule.
	ItemsFilteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "items_filtered_total",
			Help:      "Total number of feed items rejected by the content filter",
		},
		[]string{"rule"},
	)

	// CacheLookupsTotal counts cache reads by result (hit, miss).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "cache_lookups_total",
			Help:      "Total number of cache lookups",
		},
		[]string{"result"},
	)

	// SearchDuration measures end-to-end search time.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "newswire",
			Name:      "search_duration_seconds",
			Help:      "Duration of search requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// SearchCategoryTimeoutsTotal counts categories that missed the search deadline.
	SearchCategoryTimeoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "search_category_timeouts_total",
			Help:      "Total number of search category fetches that timed out",
		},
		[]string{"category"},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newswire",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)
)

// RecordFeedFetch records one feed fetch.
func RecordFeedFetch(status string, elapsed time.Duration) {
	FeedFetchTotal.WithLabelValues(status).Inc()
	FeedFetchDuration.Observe(elapsed.Seconds())
}

// RecordFiltered records a filter rejection. The reason's bracketed detail
// is dropped to keep label cardinality bounded.
func RecordFiltered(reason string) {
	rule, _, _ := strings.Cut(reason, "[")
	ItemsFilteredTotal.WithLabelValues(rule).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	CacheLookupsTotal.WithLabelValues("miss").Inc()
}

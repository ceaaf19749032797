package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/scipunch/newswire/cache"
	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/search"
)

const defaultType = "news"

var paramRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,40}$`)

type Cache interface {
	Get(key string) (cache.Entry, bool)
	Put(key string, data []types.Article) cache.Entry
}

type Aggregator interface {
	Aggregate(ctx context.Context, sources []types.FeedSource) []types.Article
}

type Searcher interface {
	Search(ctx context.Context, term string) (search.Result, error)
}

// FeedResponse is the envelope for category listings. Count is only set
// when the data was freshly aggregated.
type FeedResponse struct {
	Data      []types.Article `json:"data"`
	Cached    bool            `json:"cached"`
	Timestamp int64           `json:"timestamp"`
	Count     *int            `json:"count,omitempty"`
}

type SearchResponse struct {
	Data       []search.ScoredArticle `json:"data"`
	Cached     bool                   `json:"cached"`
	Timestamp  int64                  `json:"timestamp"`
	Count      int                    `json:"count"`
	SearchTerm string                 `json:"searchTerm"`
}

type Handler struct {
	cache         Cache
	aggregator    Aggregator
	searcher      Searcher
	catalog       config.Catalog
	maxTermLength int
	now           func() time.Time
}

func NewHandler(c Cache, aggregator Aggregator, searcher Searcher, catalog config.Catalog, cfg config.SearchConfig) *Handler {
	return &Handler{
		cache:         c,
		aggregator:    aggregator,
		searcher:      searcher,
		catalog:       catalog,
		maxTermLength: cfg.MaxTermLength,
		now:           time.Now,
	}
}

// Aggregate serves the feed endpoint. A non-blank search parameter takes
// priority over type and category.
func (h *Handler) Aggregate(c echo.Context) error {
	if term := c.QueryParam("search"); strings.TrimSpace(term) != "" {
		return h.search(c, term)
	}

	feedType := c.QueryParam("type")
	if feedType == "" {
		feedType = defaultType
	}
	category := c.QueryParam("category")

	if !paramRe.MatchString(feedType) {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be 1-40 letters, digits, '-' or '_'")
	}
	if category != "" && !paramRe.MatchString(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "category must be 1-40 letters, digits, '-' or '_'")
	}

	key := cache.Key(feedType, category)
	if entry, ok := h.cache.Get(key); ok {
		slog.Debug("returning cached data", "key", key, "articles", len(entry.Data))
		return c.JSON(http.StatusOK, FeedResponse{
			Data:      entry.Data,
			Cached:    true,
			Timestamp: entry.Timestamp.UnixMilli(),
		})
	}

	ctx := c.Request().Context()
	feeds := h.catalog.Resolve(feedType, category)
	slog.Info("fetching fresh data", "key", key, "sources", len(feeds))

	articles := h.aggregator.Aggregate(ctx, feeds)
	if err := ctx.Err(); err != nil {
		// Partial results of an abandoned request are not cached
		return fmt.Errorf("aggregation for %s interrupted: %w", key, err)
	}
	entry := h.cache.Put(key, articles)

	count := len(entry.Data)
	return c.JSON(http.StatusOK, FeedResponse{
		Data:      entry.Data,
		Cached:    false,
		Timestamp: h.now().UnixMilli(),
		Count:     &count,
	})
}

func (h *Handler) search(c echo.Context, term string) error {
	if h.maxTermLength > 0 && utf8.RuneCountInString(term) > h.maxTermLength {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("search term must be at most %d characters", h.maxTermLength))
	}

	res, err := h.searcher.Search(c.Request().Context(), term)
	if errors.Is(err, search.ErrEmptyTerm) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	data := res.Articles
	if data == nil {
		data = []search.ScoredArticle{}
	}
	return c.JSON(http.StatusOK, SearchResponse{
		Data:       data,
		Cached:     false,
		Timestamp:  h.now().UnixMilli(),
		Count:      len(data),
		SearchTerm: res.Term,
	})
}

// Health reports liveness
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

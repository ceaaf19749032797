package search

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher/types"
)

type staticPool []types.Article

func (p staticPool) Pool() []types.Article { return p }

// fakeAggregator answers by the first feed URL of a request
type fakeAggregator struct {
	byURL map[string][]types.Article
	delay map[string]time.Duration

	mu    sync.Mutex
	calls map[string]int
	sizes map[string]int
}

func (f *fakeAggregator) Aggregate(ctx context.Context, sources []types.FeedSource) []types.Article {
	url := sources[0].URL
	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[string]int{}
		f.sizes = map[string]int{}
	}
	f.calls[url]++
	f.sizes[url] = len(sources)
	f.mu.Unlock()

	if d := f.delay[url]; d > 0 {
		time.Sleep(d)
	}
	return f.byURL[url]
}

func art(url, title, description string) types.Article {
	return types.Article{URL: url, Link: url, Title: title, Description: description}
}

func testConfig() config.SearchConfig {
	cfg := config.Default().Search
	cfg.CategoryTimeout = config.Duration{Duration: 200 * time.Millisecond}
	return cfg
}

func titles(articles []ScoredArticle) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}

func TestVariants(t *testing.T) {
	tests := []struct {
		word     string
		contains []string
	}{
		{"dodger", []string{"dodger", "dodgers"}},
		{"dodgers", []string{"dodgers", "dodger"}},
		{"city", []string{"city", "cities"}},
		{"cities", []string{"cities", "city", "citie"}},
		{"beach", []string{"beach", "beaches"}},
		{"beaches", []string{"beaches", "beach"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Variants(tt.word)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		article types.Article
		term    string
		want    bool
	}{
		{
			name:    "singular query finds plural text",
			article: art("https://a.test/1", "Dodgers clinch the pennant", ""),
			term:    "dodger",
			want:    true,
		},
		{
			name:    "plural query finds singular text",
			article: art("https://a.test/2", "A dodger fan's diary from the bleachers", ""),
			term:    "dodgers",
			want:    true,
		},
		{
			name:    "y to ies",
			article: art("https://a.test/3", "The best cities to visit this summer", ""),
			term:    "city",
			want:    true,
		},
		{
			name:    "every word must match",
			article: art("https://a.test/4", "Lakers win in overtime thriller", ""),
			term:    "lakers playoffs",
			want:    false,
		},
		{
			name:    "words may match across fields",
			article: types.Article{URL: "https://a.test/5", Title: "Lakers win again", Source: "ESPN", Category: "Playoff"},
			term:    "lakers playoffs",
			want:    true,
		},
		{
			name:    "single character words are ignored",
			article: art("https://a.test/6", "Vitamin deficiency explained", ""),
			term:    "vitamin d",
			want:    true,
		},
		{
			name:    "content is searched",
			article: types.Article{URL: "https://a.test/7", Title: "Morning briefing", Content: "Inflation cooled in March"},
			term:    "inflation",
			want:    true,
		},
		{
			name:    "no match",
			article: art("https://a.test/8", "Weather is calm today", ""),
			term:    "hurricane",
			want:    false,
		},
		{
			name:    "untitled articles never match",
			article: types.Article{URL: "https://a.test/9", Description: "hurricane season"},
			term:    "hurricane",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.article, tt.term))
		})
	}
}

func TestScore(t *testing.T) {
	// 1 title occurrence (5) + title bonus (10) + word in title (3) + word in description (1) + 1 description occurrence (2)
	a := art("https://a.test/1", "Election results are in", "Full election coverage")
	assert.Equal(t, 21, Score(a, "election"))

	b := art("https://a.test/2", "The best cities to visit", "")
	assert.Greater(t, Score(b, "city"), 0)

	// Regex metacharacters are counted literally
	c := art("https://a.test/3", "Is C++ (still) worth learning? C++ says yes", "")
	assert.Equal(t, 2*5+10+3, Score(c, "c++"))
}

func TestSearch_EmptyTerm(t *testing.T) {
	e := NewEngine(staticPool{}, &fakeAggregator{}, config.Catalog{}, testConfig())

	_, err := e.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestSearch_DedupAcrossPoolAndFresh(t *testing.T) {
	cached := art("https://same.test/story", "Dodgers win the pennant", "cached copy")
	fresh := art("https://same.test/story", "Dodgers win the pennant", "fresh copy")

	catalog := config.Catalog{"sports": {{URL: "https://sports.test/rss"}}}
	agg := &fakeAggregator{byURL: map[string][]types.Article{
		"https://sports.test/rss": {fresh, art("https://other.test/1", "Dodgers parade route announced", "")},
	}}

	e := NewEngine(staticPool{cached}, agg, catalog, testConfig())
	res, err := e.Search(context.Background(), "Dodgers")
	require.NoError(t, err)

	assert.Equal(t, "dodgers", res.Term)
	require.Len(t, res.Articles, 2)
	var same int
	for _, a := range res.Articles {
		if a.URL == "https://same.test/story" {
			same++
			assert.Equal(t, "cached copy", a.Description)
		}
	}
	assert.Equal(t, 1, same)
}

func TestSearch_RelevanceOrdering(t *testing.T) {
	pool := staticPool{
		art("https://x.test/b", "Transit plans unveiled", "The city council discussed new bike lanes"),
		art("https://x.test/a", "City council approves bike lanes", "A vote on downtown bike lanes"),
	}
	e := NewEngine(pool, &fakeAggregator{}, config.Catalog{}, testConfig())

	res, err := e.Search(context.Background(), "bike lanes")
	require.NoError(t, err)
	require.Len(t, res.Articles, 2)

	assert.Equal(t, "City council approves bike lanes", res.Articles[0].Title)
	assert.Greater(t, res.Articles[0].RelevanceScore, res.Articles[1].RelevanceScore)
}

func TestSearch_WordVariantOrdering(t *testing.T) {
	pool := staticPool{
		art("https://x.test/1", "Rising rent across big cities", "housing costs"),
		art("https://x.test/2", "Housing costs in the city", "rent is up"),
	}
	e := NewEngine(pool, &fakeAggregator{}, config.Catalog{}, testConfig())

	res, err := e.Search(context.Background(), "city")
	require.NoError(t, err)
	require.Len(t, res.Articles, 2)

	assert.Equal(t, []string{"Housing costs in the city", "Rising rent across big cities"}, titles(res.Articles))
	assert.Greater(t, res.Articles[1].RelevanceScore, 0)
}

func TestSearch_StableTies(t *testing.T) {
	pool := staticPool{
		art("https://x.test/1", "Storm warning first", ""),
		art("https://x.test/2", "Storm warning second", ""),
		art("https://x.test/3", "Storm warning third", ""),
	}
	e := NewEngine(pool, &fakeAggregator{}, config.Catalog{}, testConfig())

	res, err := e.Search(context.Background(), "storm")
	require.NoError(t, err)
	assert.Equal(t, []string{"Storm warning first", "Storm warning second", "Storm warning third"}, titles(res.Articles))
}

func TestSearch_CategoryTimeout(t *testing.T) {
	catalog := config.Catalog{
		"news":   {{URL: "https://fast.test/rss"}},
		"sports": {{URL: "https://slow.test/rss"}},
	}
	agg := &fakeAggregator{
		byURL: map[string][]types.Article{
			"https://fast.test/rss": {art("https://fast.test/1", "Budget vote passes the senate", "")},
			"https://slow.test/rss": {art("https://slow.test/1", "Budget for the stadium approved", "")},
		},
		delay: map[string]time.Duration{"https://slow.test/rss": 2 * time.Second},
	}

	e := NewEngine(staticPool{}, agg, catalog, testConfig())

	start := time.Now()
	res, err := e.Search(context.Background(), "budget")
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []string{"Budget vote passes the senate"}, titles(res.Articles))
}

func TestSearch_SourcesPerCategoryCap(t *testing.T) {
	feeds := make([]types.FeedSource, 20)
	for i := range feeds {
		feeds[i] = types.FeedSource{URL: "https://news.test/rss"}
	}
	catalog := config.Catalog{"news": feeds, "custom": feeds[:9]}
	agg := &fakeAggregator{}

	cfg := testConfig()
	cfg.SourcesPerCategory = map[string]int{"news": 12}
	cfg.DefaultSources = 6
	e := NewEngine(staticPool{}, agg, catalog, cfg)

	_, err := e.Search(context.Background(), "anything")
	require.NoError(t, err)

	agg.mu.Lock()
	defer agg.mu.Unlock()
	assert.Equal(t, 2, agg.calls["https://news.test/rss"])
	// The last writer is either category; both must respect their cap
	assert.Contains(t, []int{12, 6}, agg.sizes["https://news.test/rss"])
}

func TestSearch_RefreshWhenEmpty(t *testing.T) {
	catalog := config.Catalog{"news": {{URL: "https://news.test/rss"}}}
	agg := &fakeAggregator{byURL: map[string][]types.Article{
		"https://news.test/rss": {art("https://news.test/1", "Fresh harvest festival opens", "")},
	}}

	cfg := testConfig()
	cfg.Refresh = config.RefreshWhenEmpty

	withPool := NewEngine(staticPool{art("https://c.test/1", "Harvest moon tonight", "")}, agg, catalog, cfg)
	res, err := withPool.Search(context.Background(), "harvest")
	require.NoError(t, err)
	assert.Equal(t, []string{"Harvest moon tonight"}, titles(res.Articles))
	assert.Equal(t, 0, agg.calls["https://news.test/rss"])

	emptyPool := NewEngine(staticPool{}, agg, catalog, cfg)
	res, err = emptyPool.Search(context.Background(), "harvest")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fresh harvest festival opens"}, titles(res.Articles))
}

func TestScoredArticle_JSON(t *testing.T) {
	blob, err := json.Marshal(ScoredArticle{Article: art("https://j.test/1", "Title", "Desc"), RelevanceScore: 7})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(blob, &got))
	assert.Equal(t, float64(7), got["relevanceScore"])
	assert.Equal(t, "https://j.test/1", got["url"])
	assert.NotContains(t, got, "Published")
	assert.NotContains(t, got, "Article")
}

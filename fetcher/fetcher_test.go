package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/filter"
)

type stubFeeds struct {
	feed types.Feed
	err  error
}

func (s stubFeeds) Fetch(ctx context.Context, url string) (types.Feed, error) {
	return s.feed, s.err
}

func newDefaultFilter(t *testing.T) *filter.Filter {
	t.Helper()
	f, err := filter.New(config.DefaultFilter())
	if err != nil {
		t.Fatalf("Failed to create filter: %v", err)
	}
	return f
}

func TestFetcher_FetchFeed(t *testing.T) {
	srv := serveFixture(t, "testdata/fixture.xml")
	f := New(NewRSSFetcher(5*time.Second, "newswire-test"), newDefaultFilter(t), time.UTC)

	articles := f.FetchFeed(context.Background(), types.FeedSource{URL: srv.URL, Label: "Fixture Wire"})
	if len(articles) != 3 {
		t.Fatalf("Expected 3 articles after filtering, got %d", len(articles))
	}

	tests := []struct {
		title       string
		image       string
		source      string
		publishedAt string
	}{
		{
			title:       "Dodgers win the World Series in seven games",
			image:       "https://cdn.fixture.test/large.jpg",
			source:      "Jane Doe",
			publishedAt: "11/1/2024, 4:15:00 AM",
		},
		{
			title:       "Weekly roundup from the wire services today",
			image:       "https://cdn.fixture.test/cover.png",
			source:      "Reuters",
			publishedAt: "10/31/2024, 10:00:00 AM",
		},
		{
			title:       "Episode 42 of the long-form interview show",
			image:       "https://cdn.fixture.test/artwork.jpg",
			source:      "Fixture",
			publishedAt: "Recently",
		},
	}

	for i, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := articles[i]
			if got.Title != tt.title {
				t.Errorf("Expected title %q, got %q", tt.title, got.Title)
			}
			if got.Image != tt.image {
				t.Errorf("Expected image %q, got %q", tt.image, got.Image)
			}
			if got.Source != tt.source {
				t.Errorf("Expected source %q, got %q", tt.source, got.Source)
			}
			if got.PublishedAt != tt.publishedAt {
				t.Errorf("Expected publishedAt %q, got %q", tt.publishedAt, got.PublishedAt)
			}
		})
	}

	if articles[0].Description != "A historic night in Los Angeles." {
		t.Errorf("Expected normalized description, got %q", articles[0].Description)
	}
}

func TestFetcher_FailSoft(t *testing.T) {
	f := New(stubFeeds{err: errors.New("connection refused")}, nil, nil)

	articles := f.FetchFeed(context.Background(), types.FeedSource{URL: "https://down.test/rss", Label: "Down"})
	if articles == nil {
		t.Errorf("Expected an empty, non-nil slice")
	}
	if len(articles) != 0 {
		t.Errorf("Expected no articles, got %d", len(articles))
	}
}

func TestFetcher_SkipsItemsWithoutLink(t *testing.T) {
	feed := types.Feed{Items: []types.FeedItem{
		{Title: "An item that has no link at all"},
		{Title: "An item that has a proper link", Link: "https://example.com/a"},
	}}
	f := New(stubFeeds{feed: feed}, newDefaultFilter(t), nil)

	articles := f.FetchFeed(context.Background(), types.FeedSource{Label: "Stub"})
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(articles))
	}
	if articles[0].URL != "https://example.com/a" {
		t.Errorf("Expected linked item, got %q", articles[0].URL)
	}
}

func TestFetcher_FiltersNormalizedText(t *testing.T) {
	feed := types.Feed{Items: []types.FeedItem{
		{Title: `<a href="https://x.test/long">Tiny</a>`, Link: "https://example.com/tiny"},
		{
			Title:       "A headline that is long enough to pass",
			Description: "This is a press&nbsp;release about things",
			Link:        "https://example.com/pr",
		},
		{Title: "<b></b>&nbsp;", Link: "https://example.com/blank"},
		{Title: "<em>Council approves the new transit budget</em>", Link: "https://example.com/ok"},
	}}
	f := New(stubFeeds{feed: feed}, newDefaultFilter(t), nil)

	articles := f.FetchFeed(context.Background(), types.FeedSource{Label: "Stub"})
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d: %+v", len(articles), articles)
	}
	if articles[0].Title != "Council approves the new transit budget" {
		t.Errorf("Expected normalized title, got %q", articles[0].Title)
	}
}

func TestFetcher_DropsEmptyTitleWithoutFilter(t *testing.T) {
	feed := types.Feed{Items: []types.FeedItem{
		{Title: "<img src=\"https://example.com/a.jpg\">", Link: "https://example.com/a"},
		{Title: "Short", Link: "https://example.com/b"},
	}}
	f := New(stubFeeds{feed: feed}, nil, nil)

	articles := f.FetchFeed(context.Background(), types.FeedSource{Label: "Stub"})
	if len(articles) != 1 || articles[0].Title != "Short" {
		t.Errorf("Expected only the titled item, got %+v", articles)
	}
}

package source

import (
	"testing"

	"github.com/scipunch/newswire/fetcher/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		item types.FeedItem
		want string
	}{
		{
			name: "creator first",
			item: types.FeedItem{Creator: "Jane Doe", Author: "desk@example.com", Link: "https://www.nytimes.com/a"},
			want: "Jane Doe",
		},
		{
			name: "author when no creator",
			item: types.FeedItem{Author: "John Roe", Link: "https://www.nytimes.com/a"},
			want: "John Roe",
		},
		{
			name: "rss source element",
			item: types.FeedItem{Source: "Reuters", Link: "https://news.google.com/articles/abc"},
			want: "Reuters",
		},
		{
			name: "blank creator ignored",
			item: types.FeedItem{Creator: "   ", Link: "https://www.theguardian.com/world/x"},
			want: "The Guardian",
		},
		{
			name: "known publisher",
			item: types.FeedItem{Link: "https://www.bbc.co.uk/news/world-1"},
			want: "BBC News",
		},
		{
			name: "known publisher with subdomain key",
			item: types.FeedItem{Link: "https://abcnews.go.com/US/story"},
			want: "ABC News",
		},
		{
			name: "unknown host is capitalized",
			item: types.FeedItem{Link: "https://www.latimes.com/sports/story"},
			want: "Latimes",
		},
		{
			name: "unknown subdomain uses first label",
			item: types.FeedItem{Link: "https://feeds.example.org/item"},
			want: "Feeds",
		},
		{
			name: "unparseable link falls back",
			item: types.FeedItem{Link: "://bad link"},
			want: "Default Label",
		},
		{
			name: "nothing at all falls back",
			item: types.FeedItem{},
			want: "Default Label",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.item, "Default Label")
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

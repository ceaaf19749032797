package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func serveFixture(t *testing.T, name string) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSFetcher_Fetch(t *testing.T) {
	srv := serveFixture(t, "testdata/fixture.xml")
	f := NewRSSFetcher(5*time.Second, "newswire-test")

	feed, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Failed to fetch feed: %v", err)
	}

	if feed.Title != "Fixture Feed" {
		t.Errorf("Expected title 'Fixture Feed', got %q", feed.Title)
	}
	if len(feed.Items) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Creator != "Jane Doe" {
		t.Errorf("Expected creator 'Jane Doe', got %q", first.Creator)
	}
	if len(first.MediaContent) != 2 || first.MediaContent[1].Width != 800 {
		t.Errorf("Expected two media:content entries with widths, got %+v", first.MediaContent)
	}
	if first.Published == nil {
		t.Errorf("Expected published date")
	}
	if len(first.Categories) != 1 || first.Categories[0] != "Sports" {
		t.Errorf("Expected category Sports, got %v", first.Categories)
	}

	roundup := feed.Items[3]
	if roundup.Source != "Reuters" {
		t.Errorf("Expected <source> to be kept, got %q", roundup.Source)
	}
	if len(roundup.Enclosures) != 1 || roundup.Enclosures[0].Type != "image/png" {
		t.Errorf("Expected image enclosure, got %+v", roundup.Enclosures)
	}

	episode := feed.Items[4]
	if episode.ITunesImage != "https://cdn.fixture.test/artwork.jpg" {
		t.Errorf("Expected itunes image, got %q", episode.ITunesImage)
	}
	if len(episode.GroupContent) != 1 || episode.GroupContent[0].URL != "https://cdn.fixture.test/group.jpg" {
		t.Errorf("Expected media:group content, got %+v", episode.GroupContent)
	}
}

func TestRSSFetcher_UserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.UserAgent()
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>t</title></channel></rss>`))
	}))
	defer srv.Close()

	f := NewRSSFetcher(5*time.Second, "Mozilla/5.0 test")
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Failed to fetch feed: %v", err)
	}
	if got != "Mozilla/5.0 test" {
		t.Errorf("Expected User-Agent 'Mozilla/5.0 test', got %q", got)
	}
}

func TestRSSFetcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed xml",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("this is not a feed"))
			},
		},
		{
			name: "slow server",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewRSSFetcher(200*time.Millisecond, "newswire-test")
			if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

package types

import (
	"context"
	"time"
)

// FeedSource is one configured feed endpoint
type FeedSource struct {
	URL   string `toml:"url" json:"url"`
	Label string `toml:"source" json:"source"`
}

// Feed represents a collection of items from a feed source
type Feed struct {
	Title       string
	Description string
	Items       []FeedItem
}

// Media is a single media:content / media:thumbnail entry
type Media struct {
	URL    string
	Medium string
	Type   string
	Width  int
}

// Enclosure is an RSS enclosure
type Enclosure struct {
	URL  string
	Type string
}

// FeedItem represents a single item in a feed, whatever dialect it came from.
// Only the fetcher and the parser packages look at it.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	Content     string // content:encoded or atom content
	Creator     string // dc:creator
	Author      string
	Source      string // RSS <source> title
	Categories  []string
	Published   *time.Time
	GUID        string

	ITunesImage    string
	MediaContent   []Media
	MediaThumbnail []Media
	GroupContent   []Media
	GroupThumbnail []Media
	Enclosures     []Enclosure
	LegacyImage    string // item-level <image> or bare <thumbnail url="">
}

// Article is the normalized record served to clients
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Category    string `json:"category"`

	// Published is the parsed publish time, zero when the feed gave none
	Published time.Time `json:"-"`
}

// FeedFetcher is an interface for fetching feeds from different sources
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (Feed, error)
}

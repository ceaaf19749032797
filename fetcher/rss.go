package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/mmcdole/gofeed/rss"

	"github.com/scipunch/newswire/fetcher/types"
)

// RSSFetcher fetches RSS, Atom and JSON feeds using gofeed
type RSSFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

// NewRSSFetcher creates a new feed fetcher. Every Fetch is bounded by
// timeout and identifies itself with userAgent.
func NewRSSFetcher(timeout time.Duration, userAgent string) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.RSSTranslator = &rssSourceTranslator{base: &gofeed.DefaultRSSTranslator{}}
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &RSSFetcher{
		parser:  parser,
		timeout: timeout,
	}
}

// Fetch retrieves and parses a feed from the given URL
func (f *RSSFetcher) Fetch(ctx context.Context, url string) (types.Feed, error) {
	var feed types.Feed

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	gofeedFeed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return feed, fmt.Errorf("failed to parse feed: %w", err)
	}

	feed.Title = gofeedFeed.Title
	feed.Description = gofeedFeed.Description
	feed.Items = make([]types.FeedItem, 0, len(gofeedFeed.Items))
	for _, item := range gofeedFeed.Items {
		if item == nil {
			continue
		}
		feed.Items = append(feed.Items, convertItem(item))
	}

	return feed, nil
}

func convertItem(item *gofeed.Item) types.FeedItem {
	feedItem := types.FeedItem{
		Title:       item.Title,
		Link:        strings.TrimSpace(item.Link),
		Description: item.Description,
		Content:     item.Content,
		Categories:  item.Categories,
		GUID:        item.GUID,
		Source:      item.Custom["source"],
	}

	if feedItem.Link == "" && strings.HasPrefix(item.GUID, "http") {
		feedItem.Link = item.GUID
	}

	// Parse published date if available
	if item.PublishedParsed != nil {
		feedItem.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		feedItem.Published = item.UpdatedParsed
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		feedItem.Creator = item.DublinCoreExt.Creator[0]
	}
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		feedItem.Author = item.Authors[0].Name
		if feedItem.Author == "" {
			feedItem.Author = item.Authors[0].Email
		}
	}
	if item.ITunesExt != nil {
		feedItem.ITunesImage = item.ITunesExt.Image
	}
	if item.Image != nil {
		feedItem.LegacyImage = item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		feedItem.Enclosures = append(feedItem.Enclosures, types.Enclosure{URL: enc.URL, Type: enc.Type})
	}

	if media, ok := item.Extensions["media"]; ok {
		feedItem.MediaContent = toMedia(media["content"])
		feedItem.MediaThumbnail = toMedia(media["thumbnail"])
		for _, group := range media["group"] {
			feedItem.GroupContent = append(feedItem.GroupContent, toMedia(group.Children["content"])...)
			feedItem.GroupThumbnail = append(feedItem.GroupThumbnail, toMedia(group.Children["thumbnail"])...)
		}
	}

	return feedItem
}

func toMedia(extensions []ext.Extension) []types.Media {
	if len(extensions) == 0 {
		return nil
	}
	media := make([]types.Media, 0, len(extensions))
	for _, e := range extensions {
		url := strings.TrimSpace(e.Attrs["url"])
		if url == "" {
			continue
		}
		width, _ := strconv.Atoi(strings.TrimSpace(e.Attrs["width"]))
		media = append(media, types.Media{
			URL:    url,
			Medium: e.Attrs["medium"],
			Type:   e.Attrs["type"],
			Width:  width,
		})
	}
	return media
}

// rssSourceTranslator keeps the RSS <source> element, which the default
// translator drops, in Item.Custom["source"]
type rssSourceTranslator struct {
	base *gofeed.DefaultRSSTranslator
}

func (t *rssSourceTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	rssFeed, ok := feed.(*rss.Feed)
	if !ok {
		return nil, fmt.Errorf("feed did not match expected type of *rss.Feed")
	}

	f, err := t.base.Translate(rssFeed)
	if err != nil {
		return nil, err
	}

	for i, item := range rssFeed.Items {
		if i >= len(f.Items) {
			break
		}
		if item == nil || item.Source == nil || item.Source.Title == "" {
			continue
		}
		if f.Items[i].Custom == nil {
			f.Items[i].Custom = make(map[string]string)
		}
		f.Items[i].Custom["source"] = item.Source.Title
	}
	return f, nil
}

package parser

import (
	"time"

	"github.com/scipunch/newswire/fetcher/types"
	"github.com/scipunch/newswire/parser/image"
	"github.com/scipunch/newswire/parser/source"
	"github.com/scipunch/newswire/parser/text"
)

const (
	// PublishedLayout is the human-readable publishedAt format
	PublishedLayout = "1/2/2006, 3:04:05 PM"

	Recently        = "Recently"
	DefaultCategory = "News"
)

// Normalized returns a copy of item with title and description reduced to
// plain text, the form the filter and the Article both see.
func Normalized(item types.FeedItem) types.FeedItem {
	item.Title = text.Normalize(item.Title)
	item.Description = text.Normalize(item.Description)
	return item
}

// ToArticle maps a raw item that already passed the filter into an Article.
// loc is the display location for publishedAt, nil means UTC.
func ToArticle(item types.FeedItem, feed types.FeedSource, loc *time.Location) types.Article {
	if loc == nil {
		loc = time.UTC
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}

	article := types.Article{
		Title:       text.Normalize(item.Title),
		Description: text.Normalize(item.Description),
		Content:     text.Normalize(content),
		URL:         item.Link,
		Link:        item.Link,
		Image:       image.Resolve(item),
		Source:      source.Resolve(item, feed.Label),
		PublishedAt: Recently,
		Category:    DefaultCategory,
	}

	if item.Published != nil && !item.Published.IsZero() {
		article.Published = *item.Published
		article.PublishedAt = item.Published.In(loc).Format(PublishedLayout)
	}

	for _, c := range item.Categories {
		if c = text.Normalize(c); c != "" {
			article.Category = c
			break
		}
	}

	return article
}

// Package image picks a representative picture for a feed item.
package image

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/scipunch/newswire/fetcher/types"
)

// Stock pictures used when the item carries nothing usable
const (
	PodcastImage = "https://images.unsplash.com/photo-1478737270239-2f02b77fc618?w=800&q=80"
	OpinionImage = "https://images.unsplash.com/photo-1586339949216-35c2747e98f8?w=800&q=80"
	VideoImage   = "https://images.unsplash.com/photo-1560169897-fc0cdbdfa4d5?w=800&q=80"
	DefaultImage = "https://images.unsplash.com/photo-1495020689067-958852a7765e?w=800&q=80"
)

const (
	minMediaWidth  = 400
	minInlineWidth = 300
)

var trackingMarkers = []string{"1x1", "pixel", "tracker", "tracking", "icon", "logo"}

// Resolve returns the best image URL for the item. It never returns an
// empty string.
func Resolve(item types.FeedItem) string {
	if thumb, ok := YouTubeThumbnail(item.Link); ok {
		return thumb
	}

	if IsValidURL(item.ITunesImage) {
		return item.ITunesImage
	}

	if u := fromMedia(item.MediaContent, true); u != "" {
		return u
	}

	if u := fromEnclosures(item.Enclosures); u != "" {
		return u
	}

	if u := fromMedia(item.MediaThumbnail, false); u != "" {
		return u
	}

	for _, group := range [][]types.Media{item.GroupContent, item.GroupThumbnail} {
		if len(group) > 0 && IsValidURL(group[0].URL) {
			return group[0].URL
		}
	}

	if IsValidURL(item.LegacyImage) {
		return item.LegacyImage
	}

	for _, html := range []string{item.Content, item.Description} {
		if html == "" {
			continue
		}
		if u := fromHTML(html); u != "" {
			return u
		}
		break
	}

	return fallback(item.Title, item.Description)
}

// YouTubeThumbnail builds the hqdefault thumbnail URL for a watch link
func YouTubeThumbnail(link string) (string, bool) {
	if !strings.Contains(link, "youtube.com/watch") {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	id := u.Query().Get("v")
	if id == "" {
		return "", false
	}
	return "https://i.ytimg.com/vi/" + url.PathEscape(id) + "/hqdefault.jpg", true
}

// IsValidURL rejects empty, relative and tracking-pixel URLs
func IsValidURL(u string) bool {
	if len(u) < 10 {
		return false
	}
	if strings.Contains(u, "1x1") || strings.Contains(u, "tracker") || strings.Contains(u, "tracking") {
		return false
	}
	if strings.Contains(u, "pixel") && !strings.Contains(u, "pixels") {
		return false
	}
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

// fromMedia prefers the widest entry when it is wide enough or of unknown
// width, then falls back to the first entry.
func fromMedia(media []types.Media, skipVideo bool) string {
	if len(media) == 0 {
		return ""
	}

	candidates := make([]types.Media, 0, len(media))
	for _, m := range media {
		if m.URL == "" || (skipVideo && m.Medium == "video") {
			continue
		}
		candidates = append(candidates, m)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Width > candidates[j].Width
	})

	if len(candidates) > 0 {
		best := candidates[0]
		if (best.Width >= minMediaWidth || best.Width == 0) && IsValidURL(best.URL) {
			return best.URL
		}
	}

	if IsValidURL(media[0].URL) {
		return media[0].URL
	}
	return ""
}

func fromEnclosures(enclosures []types.Enclosure) string {
	for _, enc := range enclosures {
		if strings.HasPrefix(enc.Type, "image/") && IsValidURL(enc.URL) {
			return enc.URL
		}
	}
	if len(enclosures) > 0 && IsValidURL(enclosures[0].URL) {
		return enclosures[0].URL
	}
	return ""
}

type inlineImage struct {
	url   string
	width int
}

// fromHTML scans <img> tags and returns the widest acceptable one
func fromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var images []inlineImage
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" || hasTrackingMarker(src) {
			return
		}
		width := leadingInt(s.AttrOr("width", ""))
		if width >= minInlineWidth || width == 0 {
			images = append(images, inlineImage{url: src, width: width})
		}
	})

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].width > images[j].width
	})
	for _, img := range images {
		if IsValidURL(img.url) {
			return img.url
		}
	}
	return ""
}

func fallback(title, description string) string {
	title = strings.ToLower(title)
	description = strings.ToLower(description)

	switch {
	case strings.Contains(title, "podcast") || strings.Contains(description, "podcast"):
		return PodcastImage
	case strings.Contains(title, "opinion") || strings.Contains(title, "editorial"):
		return OpinionImage
	case strings.Contains(title, "video") || strings.Contains(description, "video"):
		return VideoImage
	}
	return DefaultImage
}

func hasTrackingMarker(u string) bool {
	for _, marker := range trackingMarkers {
		if strings.Contains(u, marker) {
			return true
		}
	}
	return false
}

// leadingInt parses "800", "800px" or " 640 " and returns 0 otherwise
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

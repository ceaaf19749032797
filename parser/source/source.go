// Package source derives a human-readable publisher name for a feed item.
package source

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/scipunch/newswire/fetcher/types"
)

var publishers = map[string]string{
	"nytimes.com":                 "New York Times",
	"theguardian.com":             "The Guardian",
	"bbc.com":                     "BBC News",
	"bbc.co.uk":                   "BBC News",
	"cnn.com":                     "CNN",
	"reuters.com":                 "Reuters",
	"apnews.com":                  "Associated Press",
	"washingtonpost.com":          "Washington Post",
	"wsj.com":                     "Wall Street Journal",
	"foxnews.com":                 "Fox News",
	"nbcnews.com":                 "NBC News",
	"abcnews.go.com":              "ABC News",
	"cbsnews.com":                 "CBS News",
	"npr.org":                     "NPR",
	"politico.com":                "Politico",
	"bloomberg.com":               "Bloomberg",
	"cnbc.com":                    "CNBC",
	"techcrunch.com":              "TechCrunch",
	"theverge.com":                "The Verge",
	"wired.com":                   "Wired",
	"arstechnica.com":             "Ars Technica",
	"engadget.com":                "Engadget",
	"variety.com":                 "Variety",
	"hollywoodreporter.com":       "Hollywood Reporter",
	"deadline.com":                "Deadline",
	"espn.com":                    "ESPN",
	"si.com":                      "Sports Illustrated",
	"cbssports.com":               "CBS Sports",
	"nypost.com":                  "New York Post",
	"aljazeera.com":               "Al Jazeera",
	"dw.com":                      "Deutsche Welle",
	"france24.com":                "France 24",
	"channelnewsasia.com":         "Channel NewsAsia",
	"scmp.com":                    "South China Morning Post",
	"timesofindia.indiatimes.com": "Times of India",
	"thestar.com.my":              "The Star Malaysia",
	"abc.net.au":                  "ABC News Australia",
	"cbc.ca":                      "CBC News",
	"usatoday.com":                "USA Today",
}

// Resolve picks the first non-empty of: dc:creator, author, the RSS
// <source> title, a known publisher for the link's host, the capitalized
// first host label. defaultLabel is returned when none of those apply.
func Resolve(item types.FeedItem, defaultLabel string) string {
	for _, candidate := range []string{item.Creator, item.Author, item.Source} {
		if c := strings.TrimSpace(candidate); c != "" {
			return c
		}
	}

	if name := FromLink(item.Link); name != "" {
		return name
	}
	return defaultLabel
}

// FromLink maps a link's host to a publisher name. It returns "" for links
// that do not parse or have no host.
func FromLink(link string) string {
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return ""
	}

	if name, ok := publishers[host]; ok {
		return name
	}

	label, _, _ := strings.Cut(host, ".")
	return capitalize(label)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

package filter

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/scipunch/newswire/config"
	"github.com/scipunch/newswire/fetcher/types"
)

// Filter decides which raw feed items are dropped before normalization
type Filter struct {
	config          config.Filter
	excludeDomains  []string
	excludeKeywords []string
	excludePatterns []*regexp.Regexp
	patternSources  []string
}

// New compiles a filter from config. Invalid URL patterns are logged and
// skipped, the rest of the filter still applies.
func New(cfg config.Filter) (*Filter, error) {
	f := &Filter{
		config:          cfg,
		excludeDomains:  lowerAll(cfg.ExcludeDomains),
		excludeKeywords: lowerAll(cfg.ExcludeKeywords),
		excludePatterns: make([]*regexp.Regexp, 0, len(cfg.ExcludeURLPatterns)),
	}

	for _, pattern := range cfg.ExcludeURLPatterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			slog.Warn("invalid url pattern in filter", "pattern", pattern, "error", err)
			continue
		}
		f.excludePatterns = append(f.excludePatterns, re)
		f.patternSources = append(f.patternSources, pattern)
	}

	return f, nil
}

// ShouldReject reports whether the item must be dropped and why.
// Checks run in order and the first match wins:
// title length, blocked domain, blocked keyword, blocked URL pattern.
func (f *Filter) ShouldReject(item types.FeedItem) (bool, string) {
	title := strings.ToLower(item.Title)
	description := strings.ToLower(item.Description)
	link := strings.ToLower(item.Link)

	// 1. Check minimum title length
	if f.config.MinTitleLength > 0 && len([]rune(item.Title)) < f.config.MinTitleLength {
		return true, "min_title_length"
	}

	// 2. Check excluded domains
	for _, domain := range f.excludeDomains {
		if strings.Contains(link, domain) {
			return true, "exclude_domain[" + domain + "]"
		}
	}

	// 3. Check excluded keywords
	for _, keyword := range f.excludeKeywords {
		if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
			return true, "exclude_keyword[" + keyword + "]"
		}
	}

	// 4. Check URL patterns
	for i, pattern := range f.excludePatterns {
		if pattern.MatchString(link) {
			return true, "exclude_url_pattern[" + f.patternSources[i] + "]"
		}
	}

	return false, ""
}

// Apply drops rejected items and returns the survivors in their original order
func (f *Filter) Apply(items []types.FeedItem) []types.FeedItem {
	kept := make([]types.FeedItem, 0, len(items))
	for _, item := range items {
		if reject, reason := f.ShouldReject(item); reject {
			slog.Debug("item filtered out", "title", item.Title, "reason", reason, "url", item.Link)
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

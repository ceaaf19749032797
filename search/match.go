package search

import (
	"strings"
	"unicode/utf8"

	"github.com/scipunch/newswire/fetcher/types"
)

// Variants returns the forms a query word may take in text: the word itself,
// simple plurals, the singular of a plural, and the y/ies swap.
func Variants(word string) []string {
	variants := []string{word, word + "s", word + "es"}
	if w, ok := strings.CutSuffix(word, "s"); ok {
		variants = append(variants, w)
	}
	if w, ok := strings.CutSuffix(word, "es"); ok {
		variants = append(variants, w)
	}
	if w, ok := strings.CutSuffix(word, "ies"); ok {
		variants = append(variants, w+"y")
	}
	if w, ok := strings.CutSuffix(word, "y"); ok {
		variants = append(variants, w+"ies")
	}
	return variants
}

// Matches reports whether the article text contains the lowercase term, or
// failing that, whether every query word of two or more characters
// appears in some variant form.
func Matches(a types.Article, term string) bool {
	if a.Title == "" {
		return false
	}
	text := searchableText(a)
	if strings.Contains(text, term) {
		return true
	}

	for _, word := range strings.Fields(term) {
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if !containsVariant(text, word) {
			return false
		}
	}
	return true
}

// Score ranks a matching article for the lowercase term
func Score(a types.Article, term string) int {
	title := strings.ToLower(a.Title)
	description := strings.ToLower(a.Description)

	score := strings.Count(title, term)*5 + strings.Count(description, term)*2
	if strings.Contains(title, term) {
		score += 10
	}

	for _, word := range strings.Fields(term) {
		if utf8.RuneCountInString(word) < 3 {
			continue
		}
		if containsVariant(title, word) {
			score += 3
		}
		if containsVariant(description, word) {
			score += 1
		}
	}
	return score
}

func searchableText(a types.Article) string {
	return strings.ToLower(strings.Join([]string{a.Title, a.Description, a.Content, a.Source, a.Category}, " "))
}

func containsVariant(text, word string) bool {
	for _, v := range Variants(word) {
		if v != "" && strings.Contains(text, v) {
			return true
		}
	}
	return false
}

// identity is the dedup key: url, then link, then title
func identity(a types.Article) string {
	switch {
	case a.URL != "":
		return a.URL
	case a.Link != "":
		return a.Link
	}
	return a.Title
}

// Dedup keeps the first article for each identity, preserving order.
// Articles with no identity at all are dropped.
func Dedup(articles []types.Article) []types.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		key := identity(a)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}

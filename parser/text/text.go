// Package text turns feed HTML fragments into plain single-line text.
package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	entityRe     = regexp.MustCompile(`&(#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// entities is the fixed table of named references feeds commonly use.
// Typographic punctuation is flattened to ASCII.
var entities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"mdash":  "-",
	"ndash":  "-",
	"hellip": "...",
	"rsquo":  "'",
	"lsquo":  "'",
	"rdquo":  `"`,
	"ldquo":  `"`,
}

// Normalize strips tags, decodes entities and collapses whitespace.
// Unknown or malformed entities stay as literal text. The result is a fixed
// point: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Decoding can surface new markup ("&lt;b&gt;"), so repeat until nothing
	// changes. A pass that strips a tag or decodes an entity always shortens
	// the string, which bounds the loop.
	for {
		next := pass(s)
		if next == s {
			return next
		}
		s = next
	}
}

func pass(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = entityRe.ReplaceAllStringFunc(s, decodeEntity)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func decodeEntity(ref string) string {
	name := ref[1 : len(ref)-1]
	if name[0] != '#' {
		if v, ok := entities[name]; ok {
			return v
		}
		return ref
	}

	var (
		n   uint64
		err error
	)
	if name[1] == 'x' || name[1] == 'X' {
		n, err = strconv.ParseUint(name[2:], 16, 32)
	} else {
		n, err = strconv.ParseUint(name[1:], 10, 32)
	}
	if err != nil || n == 0 {
		return ref
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return ref
	}
	return string(r)
}

package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/purell"
)

// articleRe recognises links to Spanish-Wikipedia articles, with or without
// the scheme and host prefix. Titles may carry unencoded accented letters.
var articleRe = regexp.MustCompile(`^(http(s)?://es\.wikipedia\.org)?/wiki/[\w\p{L}\p{N}/()%]+$`)

var wikipediaBase = &url.URL{Scheme: "https", Host: "es.wikipedia.org"}

// IsArticleURL reports whether rawUrl is a valid Spanish-Wikipedia article
// link (absolute or /wiki/-relative).
func IsArticleURL(rawUrl string) bool {
	return articleRe.MatchString(rawUrl)
}

// EnsureAbsolute resolves a relative link against the Wikipedia host. Links
// already carrying a scheme are returned unchanged, as are links that do not
// parse (they will fail validation downstream).
func EnsureAbsolute(link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return wikipediaBase.ResolveReference(ref).String()
}

// Canonical normalises an absolute article url into the form used as a
// frontier and visited-set key, so that trivially different spellings of the
// same link dedupe to one crawl.
func Canonical(rawUrl string) string {
	normalized, err := purell.NormalizeURLString(rawUrl, purell.FlagsSafe)
	if err != nil {
		return rawUrl
	}
	return normalized
}

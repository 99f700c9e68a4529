package docdex

import (
	"net/url"
	"strings"
)

// ExcludeFilter decides whether a URL should be skipped by the crawler.
// The zero value excludes nothing. Matching is case-insensitive.
type ExcludeFilter struct {
	// LangHosts are hosts that serve per-language mirror paths. Language
	// marker filtering applies only to URLs on these hosts; a marker
	// substring on any other host is never grounds for exclusion.
	LangHosts []string

	// LangMarkers are locale path segments (e.g. "/de", "/pt-br") that
	// identify a localized mirror of a page.
	LangMarkers []string

	// AssetMarkers identify non-text assets and action endpoints
	// (e.g. ".jpg", "edit&section"). These apply to every host.
	AssetMarkers []string
}

// Excluded reports whether the URL should be skipped. It is a pure
// predicate with no side effects.
func (f *ExcludeFilter) Excluded(rawURL string) bool {
	lower := strings.ToLower(rawURL)

	if f.isLangHost(lower) {
		for _, marker := range f.LangMarkers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				return true
			}
		}
	}

	for _, marker := range f.AssetMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}

	return false
}

// isLangHost reports whether the URL's host is one of the language-mirrored
// hosts. The check is against the parsed host, not a substring scan over the
// whole URL, so a coincidental marker match on another domain cannot trigger
// language filtering.
func (f *ExcludeFilter) isLangHost(lowerURL string) bool {
	u, err := url.Parse(lowerURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	for _, h := range f.LangHosts {
		if host == strings.ToLower(h) {
			return true
		}
	}
	return false
}

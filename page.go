package docdex

import "context"

// Root is a crawl starting point: a URL plus the maximum number of pages
// that may be visited from it. Immutable once a crawl begins.
type Root struct {
	URL      string
	MaxPages int

	// UseSitemap enables sitemap-based URL seeding for this root in
	// addition to recursive link discovery.
	UseSitemap bool
}

// Validate returns an error if the root contains invalid fields.
func (r *Root) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "root URL required")
	}
	if r.MaxPages <= 0 {
		return Errorf(EINVALID, "root page budget must be positive")
	}
	return nil
}

// Page represents the cleaned textual content of one successfully fetched
// page. Created by an Extractor; immutable thereafter.
type Page struct {
	URL   string
	Title string
	Text  string
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, when one could be determined.
	Title string

	// Text is the visible content flattened to lines: each line trimmed,
	// no empty lines, original top-to-bottom order preserved.
	Text string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Returns an EFETCH-coded error on non-2xx status or transport failure.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor extracts visible text from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract parses raw HTML and returns the cleaned text. Removal of
	// non-content structure (script, style, header, footer, nav, aside)
	// is structural, operating on the parse tree rather than on the text.
	Extract(html string) (*ExtractResult, error)
}

// LinkExtractor enumerates outbound links on a page.
type LinkExtractor interface {
	// ExtractLinks returns the href of every anchor in the HTML, resolved
	// to absolute form against baseURL. Non-HTTP schemes are skipped.
	// Duplicates are preserved; deduplication is the crawler's concern.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds URLs from a site's sitemap. It checks robots.txt
	// for sitemap directives, falls back to /sitemap.xml, and resolves
	// sitemap indexes recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

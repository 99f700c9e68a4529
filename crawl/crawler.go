// Package crawl provides breadth-first crawling of documentation domains.
// A Crawler drives the fetch-filter-extract loop for one root at a time,
// sequentially: each page is fetched and parsed before the next queue entry
// is processed.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/docdex"
)

// Crawler crawls one domain root breadth-first, collecting cleaned pages.
type Crawler struct {
	Fetcher   docdex.Fetcher
	Extractor docdex.Extractor
	Links     docdex.LinkExtractor

	// Filter decides which URLs are skipped. Optional.
	Filter *docdex.ExcludeFilter

	// AllowedPrefixes whitelists absolute URL prefixes. A discovered link
	// is enqueued only if it starts with one of these.
	AllowedPrefixes []string

	// Sitemaps seeds additional URLs for roots with UseSitemap set. Optional.
	Sitemaps docdex.SitemapService

	// RateLimiter is waited on before every fetch. Optional.
	RateLimiter docdex.DomainLimiter

	// RetryDelays configures fetch retry backoff. Nil means DefaultRetryDelays.
	RetryDelays []time.Duration
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a crawl.
const (
	ProgressFetched ProgressType = iota
	ProgressFailed
	ProgressSeeded
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	URL     string
	Visited int
	Budget  int
	Error   error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl visits pages breadth-first starting at root.URL and returns one
// Page per successfully fetched URL, in fetch order. The crawl stops when
// the pending queue empties, the page budget is reached, or the context is
// canceled. A single page's fetch or parse failure is reported through the
// progress callback and never aborts the crawl.
func (c *Crawler) Crawl(ctx context.Context, root docdex.Root, progress ProgressFunc) ([]*docdex.Page, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}

	frontier := NewFrontier(root.URL)
	c.seedFromSitemap(ctx, root, frontier, progress)

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var pages []*docdex.Page
	for frontier.VisitedCount() < root.MaxPages {
		rawURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return pages, err
		}
		if frontier.Visited(rawURL) || c.excluded(rawURL) {
			continue
		}

		if c.RateLimiter != nil {
			if err := c.RateLimiter.Wait(ctx, hostOf(rawURL)); err != nil {
				return pages, err
			}
		}

		html, err := FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, delays)
		if err != nil {
			c.emit(progress, ProgressEvent{Type: ProgressFailed, URL: rawURL, Error: err})
			continue
		}

		extracted, err := c.Extractor.Extract(html)
		if err != nil {
			c.emit(progress, ProgressEvent{Type: ProgressFailed, URL: rawURL, Error: err})
			continue
		}

		frontier.MarkVisited(rawURL)
		pages = append(pages, &docdex.Page{
			URL:   rawURL,
			Title: extracted.Title,
			Text:  extracted.Text,
		})
		c.emit(progress, ProgressEvent{
			Type:    ProgressFetched,
			URL:     rawURL,
			Visited: frontier.VisitedCount(),
			Budget:  root.MaxPages,
		})

		c.enqueueLinks(html, rawURL, frontier)
	}

	c.emit(progress, ProgressEvent{
		Type:    ProgressFinished,
		Visited: frontier.VisitedCount(),
		Budget:  root.MaxPages,
	})

	return pages, nil
}

// enqueueLinks resolves the page's outbound links and queues the ones that
// pass the whitelist and filter. Link extraction failure contributes no
// links; the page itself has already been collected.
func (c *Crawler) enqueueLinks(html, pageURL string, frontier *Frontier) {
	links, err := c.Links.ExtractLinks(html, pageURL)
	if err != nil {
		return
	}
	for _, link := range links {
		if !c.allowed(link) {
			continue
		}
		if frontier.Visited(link) || c.excluded(link) {
			continue
		}
		frontier.Push(link)
	}
}

// seedFromSitemap queues sitemap-discovered URLs for roots that opt in.
// Discovery failure is non-fatal: the crawl proceeds from the root URL alone.
func (c *Crawler) seedFromSitemap(ctx context.Context, root docdex.Root, frontier *Frontier, progress ProgressFunc) {
	if !root.UseSitemap || c.Sitemaps == nil {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, root.URL)
	if err != nil {
		c.emit(progress, ProgressEvent{Type: ProgressFailed, URL: root.URL, Error: err})
		return
	}
	seeded := 0
	for _, u := range urls {
		if !c.allowed(u) || c.excluded(u) {
			continue
		}
		frontier.Push(u)
		seeded++
	}
	c.emit(progress, ProgressEvent{Type: ProgressSeeded, URL: root.URL, Visited: 0, Budget: seeded})
}

func (c *Crawler) allowed(link string) bool {
	for _, prefix := range c.AllowedPrefixes {
		if strings.HasPrefix(link, prefix) {
			return true
		}
	}
	return false
}

func (c *Crawler) excluded(link string) bool {
	return c.Filter != nil && c.Filter.Excluded(link)
}

func (c *Crawler) emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// hostOf returns the host of a URL for rate limiting, or the raw string if
// it cannot be parsed (the limiter then treats it as its own domain).
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}

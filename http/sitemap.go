package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/bloom"
)

// Sitemap dedup sizing. Large sites publish hundreds of thousands of URLs
// across nested sitemap files; the Bloom filter keeps dedup memory flat.
const (
	sitemapExpectedURLs      = 100000
	sitemapFalsePositiveRate = 0.001
)

// Ensure SitemapService implements docdex.SitemapService at compile time.
var _ docdex.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. It checks robots.txt
// for Sitemap directives first, falls back to /sitemap.xml, and resolves
// sitemap indexes recursively. Returns an empty slice if no sitemap exists.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	// Sitemaps live at the domain root regardless of the starting path.
	base.Path = ""
	base.RawQuery = ""

	sitemapURLs := s.sitemapsFromRobots(ctx, base)
	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{base.JoinPath("sitemap.xml").String()}
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := bloom.NewFilter(sitemapExpectedURLs, sitemapFalsePositiveRate)

	urls := []string{}
	for _, sitemapURL := range sitemapURLs {
		found, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A missing or malformed sitemap is not fatal to discovery.
			continue
		}
		for _, u := range found {
			if seenURLs.Test(u) {
				continue
			}
			seenURLs.Add(u)
			urls = append(urls, u)
		}
	}

	return urls, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
// Any failure is treated as "no directives".
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, base *url.URL) []string {
	body, err := s.get(ctx, base.JoinPath("robots.txt").String())
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// walkSitemap fetches and parses one sitemap file, recursing into
// <sitemapindex> entries. The seen map guards against sitemap cycles.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, docdex.Errorf(docdex.EPARSE, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docdex.Errorf(docdex.EPARSE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range locValues(root, "sitemap") {
			found, err := s.walkSitemap(ctx, child, seen)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	return locValues(root, "url"), nil
}

// locValues returns the trimmed <loc> text of every child element with the
// given tag.
func locValues(root *etree.Element, tag string) []string {
	var values []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// get fetches a URL and returns the response body.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "invalid URL %q: %v", targetURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, docdex.Errorf(docdex.EFETCH, "GET %s: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docdex.Errorf(docdex.EFETCH, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

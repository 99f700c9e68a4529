// Package goquery provides goquery-based HTML content and link extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docdex"
	"golang.org/x/net/html"
)

// nonContentSelector matches subtrees that never carry page content.
// Removal is structural: the whole subtree is dropped from the parse tree,
// so body text that merely mentions these words is unaffected.
const nonContentSelector = "script, style, header, footer, nav, aside"

// Ensure Extractor implements docdex.Extractor at compile time.
var _ docdex.Extractor = (*Extractor)(nil)

// Extractor extracts visible text from HTML using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML, removes non-content subtrees, and flattens the
// remaining text nodes into trimmed, non-empty lines in document order.
func (e *Extractor) Extract(rawHTML string) (*docdex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docdex.Errorf(docdex.EPARSE, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docdex.Errorf(docdex.EPARSE, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(nonContentSelector).Remove()

	var lines []string
	for _, node := range doc.Find("body").Nodes {
		collectLines(node, &lines)
	}

	return &docdex.ExtractResult{
		Title: title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

// collectLines walks the tree top to bottom, appending one trimmed line per
// non-empty text node. Text nodes may themselves span multiple lines.
func collectLines(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		for _, line := range strings.Split(n.Data, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				*lines = append(*lines, trimmed)
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, lines)
	}
}

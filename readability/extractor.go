// Package readability provides a go-readability based implementation of
// docdex.Extractor. It uses heuristic boilerplate removal instead of the
// fixed structural strip performed by the goquery extractor, which can help
// on sites with unconventional markup.
package readability

import (
	"strings"

	"github.com/fwojciec/docdex"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docdex.Extractor at compile time.
var _ docdex.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content, normalized to
// the same line guarantees as the goquery extractor: trimmed lines, no
// empties, document order.
func (e *Extractor) Extract(rawHTML string) (*docdex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docdex.Errorf(docdex.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docdex.Errorf(docdex.EPARSE, "readability extraction: %v", err)
	}

	var lines []string
	for _, line := range strings.Split(article.TextContent, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return &docdex.ExtractResult{
		Title: article.Title,
		Text:  strings.Join(lines, "\n"),
	}, nil
}

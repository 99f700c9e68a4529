package main

import (
	"fmt"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/crawl"
)

// Run executes the preview command. It crawls the configured roots and
// prints what would be indexed, without calling the embedding API.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFetched:
			fmt.Fprintln(deps.Stdout, event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, docdex.ErrorMessage(event.Error))
		}
	}

	var pages []*docdex.Page
	for _, root := range cfg.CrawlRoots() {
		rootPages, err := deps.Crawler.Crawl(deps.Ctx, root, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
			return err
		}
		pages = append(pages, rootPages...)
	}

	chunks := docdex.SplitPages(pages, cfg.ChunkSize, cfg.ChunkOverlap)
	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d chunks at size %d, overlap %d)\n",
		len(pages), len(chunks), cfg.ChunkSize, cfg.ChunkOverlap)
	return nil
}

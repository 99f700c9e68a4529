package main

import (
	"fmt"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/crawl"
	"github.com/fwojciec/docdex/pipeline"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	outputDir := cfg.OutputDir
	if c.Output != "" {
		outputDir = c.Output
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Visited, event.Budget, event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, docdex.ErrorMessage(event.Error))
		case crawl.ProgressSeeded:
			fmt.Fprintf(deps.Stdout, "  seeded %d URLs from sitemap\n", event.Budget)
		}
	}

	builder := &pipeline.Builder{
		Crawler:      deps.Crawler,
		Embedder:     deps.Embedder,
		Index:        deps.Index,
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
		OutputDir:    outputDir,
		Progress:     progress,
	}

	result, err := builder.Build(deps.Ctx, cfg.CrawlRoots())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d chunks from %d pages into %s\n",
		result.Chunks, result.Pages, outputDir)
	return nil
}

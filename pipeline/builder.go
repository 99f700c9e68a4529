// Package pipeline orchestrates the crawl, chunk, embed and index stages
// into a single corpus build.
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/crawl"
)

// Crawler collects pages for a single root.
type Crawler interface {
	Crawl(ctx context.Context, root docdex.Root, progress crawl.ProgressFunc) ([]*docdex.Page, error)
}

// Builder runs the full corpus build: crawl every root, chunk the collected
// pages, embed the chunks and persist the index. Stages run sequentially;
// nothing is saved unless every stage succeeds.
type Builder struct {
	Crawler  Crawler
	Embedder docdex.Embedder
	Index    docdex.IndexStore

	ChunkSize    int
	ChunkOverlap int
	OutputDir    string

	// Progress receives crawl progress events. Optional.
	Progress crawl.ProgressFunc

	// Logger logs stage transitions. Optional.
	Logger *slog.Logger
}

// Result summarizes a completed build.
type Result struct {
	Pages  int
	Chunks int
}

// Build crawls the roots in order and writes the embedded corpus to the
// output directory. Roots are crawled independently: pages visited for one
// root do not count against another root's budget.
func (b *Builder) Build(ctx context.Context, roots []docdex.Root) (*Result, error) {
	if len(roots) == 0 {
		return nil, docdex.Errorf(docdex.EINVALID, "at least one crawl root required")
	}
	if b.ChunkSize <= 0 {
		return nil, docdex.Errorf(docdex.EINVALID, "chunk size must be positive")
	}
	if b.ChunkOverlap < 0 || b.ChunkOverlap >= b.ChunkSize {
		return nil, docdex.Errorf(docdex.EINVALID, "chunk overlap must be in [0, chunk size)")
	}
	if b.OutputDir == "" {
		return nil, docdex.Errorf(docdex.EINVALID, "output directory required")
	}

	logger := b.logger()

	var pages []*docdex.Page
	for _, root := range roots {
		rootPages, err := b.Crawler.Crawl(ctx, root, b.Progress)
		if err != nil {
			return nil, err
		}
		logger.Info("crawl complete", "root", root.URL, "pages", len(rootPages))
		pages = append(pages, rootPages...)
	}

	chunks := docdex.SplitPages(pages, b.ChunkSize, b.ChunkOverlap)
	if len(chunks) == 0 {
		return nil, docdex.Errorf(docdex.EEMPTY, "no text collected; nothing to index")
	}
	logger.Info("chunking complete", "pages", len(pages), "chunks", len(chunks))

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}

	vectors, err := b.Embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, docdex.Errorf(docdex.EINTERNAL, "embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}
	for i := range chunks {
		chunks[i].Embedding = vectors[i]
	}
	logger.Info("embedding complete", "chunks", len(chunks))

	b.Index.Add(chunks...)
	if err := b.Index.Save(ctx, b.OutputDir); err != nil {
		return nil, err
	}
	logger.Info("index saved", "dir", b.OutputDir, "chunks", b.Index.Len())

	return &Result{Pages: len(pages), Chunks: len(chunks)}, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

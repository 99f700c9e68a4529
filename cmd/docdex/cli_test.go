package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/crawl"
	"github.com/fwojciec/docdex/mock"
	"github.com/fwojciec/docdex/sqlite"
	"github.com/fwojciec/docdex/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crawlerFunc adapts a function to the pipeline.Crawler interface.
type crawlerFunc func(ctx context.Context, root docdex.Root, progress crawl.ProgressFunc) ([]*docdex.Page, error)

func (f crawlerFunc) Crawl(ctx context.Context, root docdex.Root, progress crawl.ProgressFunc) ([]*docdex.Page, error) {
	return f(ctx, root, progress)
}

func testConfig() *toml.Config {
	cfg := toml.Default()
	cfg.Roots = []toml.RootConfig{{URL: "https://docs.example.com/", MaxPages: 5}}
	cfg.AllowedPrefixes = []string{"https://docs.example.com"}
	return cfg
}

func TestMain_Run_NoArgsShowsHelp(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage")
}

func TestMain_Run_HelpCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "build")
	assert.Contains(t, stdout.String(), "preview")
	assert.Contains(t, stdout.String(), "stats")
}

func TestMain_Run_GlobalFlagsBeforeSubcommand(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><head><title>Doc</title></head><body><p>hello</p></body></html>")
	}))
	defer srv.Close()

	cfgPath := filepath.Join(t.TempDir(), "docdex.toml")
	cfg := fmt.Sprintf(`
allowed_prefixes = [%q]

[[roots]]
url = %q
max_pages = 1
`, srv.URL, srv.URL+"/")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	var stdout, stderr bytes.Buffer
	m := NewMain()

	err := m.Run(context.Background(), []string{"-c", cfgPath, "-v", "preview"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), srv.URL+"/")
	assert.Contains(t, stdout.String(), "Crawled 1 pages")
}

func TestBuildCmd_Run_ReportsSummary(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	index := &mock.IndexStore{}
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: testConfig(),
		Crawler: crawlerFunc(func(ctx context.Context, root docdex.Root, progress crawl.ProgressFunc) ([]*docdex.Page, error) {
			if progress != nil {
				progress(crawl.ProgressEvent{Type: crawl.ProgressFetched, URL: root.URL, Visited: 1, Budget: root.MaxPages})
			}
			return []*docdex.Page{{URL: root.URL, Text: "page content"}}, nil
		}),
		Embedder: &mock.Embedder{
			EmbedTextsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				vectors := make([][]float32, len(texts))
				for i := range texts {
					vectors[i] = []float32{1.0}
				}
				return vectors, nil
			},
		},
		Index: index,
	}

	cmd := &BuildCmd{Output: "out"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "[1/5] https://docs.example.com/")
	assert.Contains(t, stdout.String(), "Indexed 1 chunks from 1 pages into out")
	assert.Equal(t, "out", index.SavedDir)
}

func TestPreviewCmd_Run_PrintsURLsWithoutEmbedding(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: testConfig(),
		Crawler: crawlerFunc(func(ctx context.Context, root docdex.Root, progress crawl.ProgressFunc) ([]*docdex.Page, error) {
			pages := []*docdex.Page{
				{URL: "https://docs.example.com/", Text: "root"},
				{URL: "https://docs.example.com/a", Text: "child"},
			}
			if progress != nil {
				for _, p := range pages {
					progress(crawl.ProgressEvent{Type: crawl.ProgressFetched, URL: p.URL})
				}
			}
			return pages, nil
		}),
		// No Embedder or Index: preview must not need them.
	}

	cmd := &PreviewCmd{}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "https://docs.example.com/\n")
	assert.Contains(t, stdout.String(), "https://docs.example.com/a\n")
	assert.Contains(t, stdout.String(), "Crawled 2 pages (2 chunks at size 1000, overlap 150)")
}

func TestStatsCmd_Run_ReportsIndexCounts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/vectorstore"
	ix := sqlite.NewIndex()
	ix.Add(
		docdex.Chunk{Text: "first", Embedding: []float32{1, 2, 3}, Metadata: docdex.ChunkMetadata{Source: "https://a.example.com"}},
		docdex.Chunk{Text: "second", Embedding: []float32{4, 5, 6}, Metadata: docdex.ChunkMetadata{Source: "https://a.example.com"}},
		docdex.Chunk{Text: "third", Embedding: []float32{7, 8, 9}, Metadata: docdex.ChunkMetadata{Source: "https://b.example.com"}},
	)
	require.NoError(t, ix.Save(context.Background(), dir))

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: testConfig(),
	}

	cmd := &StatsCmd{Dir: dir}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "Chunks: 3")
	assert.Contains(t, stdout.String(), "Sources: 2")
	assert.Contains(t, stdout.String(), "Dimension: 3")
}

func TestStatsCmd_Run_MissingIndex(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Config: testConfig(),
	}

	cmd := &StatsCmd{Dir: t.TempDir()}
	err := cmd.Run(deps)

	require.Error(t, err)
	assert.Equal(t, docdex.ENOTFOUND, docdex.ErrorCode(err))
	assert.Contains(t, stderr.String(), "no index found")
}

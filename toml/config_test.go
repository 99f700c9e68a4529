package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docdex.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := toml.Default()

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Roots, 2)
	assert.Equal(t, 1000, cfg.ChunkSize)
	assert.Equal(t, 150, cfg.ChunkOverlap)
	assert.Equal(t, "vectorstore", cfg.OutputDir)
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
chunk_size = 500
output_dir = "corpus"

[[roots]]
url = "https://docs.example.com/"
max_pages = 10
use_sitemap = true
`)

	cfg, err := toml.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, "corpus", cfg.OutputDir)
	require.Len(t, cfg.Roots, 1)
	assert.Equal(t, "https://docs.example.com/", cfg.Roots[0].URL)
	assert.True(t, cfg.Roots[0].UseSitemap)
	// Untouched keys keep their defaults.
	assert.Equal(t, 150, cfg.ChunkOverlap)
	assert.Equal(t, []string{"wiki.freecad.org"}, cfg.LangHosts)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `chunk_size = "not a number"`)

	_, err := toml.Load(path)

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
}

func TestLoad_RejectsOverlapNotBelowSize(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
chunk_size = 100
chunk_overlap = 100
`)

	_, err := toml.Load(path)

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	assert.Contains(t, docdex.ErrorMessage(err), "overlap")
}

func TestLoad_RejectsRootWithoutURL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[[roots]]
url = ""
max_pages = 10
`)

	_, err := toml.Load(path)

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	assert.Contains(t, docdex.ErrorMessage(err), "root URL")
}

func TestLoad_RejectsUnknownExtractor(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `extractor = "regex"`)

	_, err := toml.Load(path)

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
}

func TestConfig_CrawlRoots(t *testing.T) {
	t.Parallel()

	cfg := toml.Default()
	roots := cfg.CrawlRoots()

	require.Len(t, roots, 2)
	assert.Equal(t, docdex.Root{
		URL:      "https://wiki.freecad.org/Power_users_hub",
		MaxPages: 2000,
	}, roots[0])
}

func TestConfig_Filter(t *testing.T) {
	t.Parallel()

	filter := toml.Default().Filter()

	assert.True(t, filter.Excluded("https://wiki.freecad.org/Sketcher/de"))
	assert.False(t, filter.Excluded("https://github.com/shaise/FreeCAD_FastenersWB/de"))
	assert.True(t, filter.Excluded("https://wiki.freecad.org/File:Shot.png"))
}

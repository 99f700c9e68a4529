// Package toml loads docdex configuration from TOML files.
package toml

import (
	"os"

	"github.com/fwojciec/docdex"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the full corpus build configuration.
type Config struct {
	Roots             []RootConfig `toml:"roots"`
	AllowedPrefixes   []string     `toml:"allowed_prefixes"`
	LangHosts         []string     `toml:"lang_hosts"`
	LangMarkers       []string     `toml:"lang_markers"`
	AssetMarkers      []string     `toml:"asset_markers"`
	ChunkSize         int          `toml:"chunk_size"`
	ChunkOverlap      int          `toml:"chunk_overlap"`
	OutputDir         string       `toml:"output_dir"`
	RequestsPerSecond float64      `toml:"requests_per_second"`
	Extractor         string       `toml:"extractor"`
}

// RootConfig describes a single crawl root.
type RootConfig struct {
	URL        string `toml:"url"`
	MaxPages   int    `toml:"max_pages"`
	UseSitemap bool   `toml:"use_sitemap"`
}

// Default returns the FreeCAD corpus configuration.
func Default() *Config {
	return &Config{
		Roots: []RootConfig{
			{URL: "https://wiki.freecad.org/Power_users_hub", MaxPages: 2000},
			{URL: "https://github.com/shaise/FreeCAD_FastenersWB", MaxPages: 450},
		},
		AllowedPrefixes: []string{
			"https://wiki.freecad.org",
			"https://github.com/shaise",
		},
		LangHosts: []string{"wiki.freecad.org"},
		LangMarkers: []string{
			"/id", "/de", "/tr", "/es", "/fr", "/hr", "/it", "/pl", "/pt",
			"/pt-br", "/ro", "/fi", "/sv", "/cs", "/ru", "/zh-cn", "/zh-tw",
			"/ja", "/ko",
		},
		AssetMarkers:      []string{".jpg", ".png", "edit&section"},
		ChunkSize:         1000,
		ChunkOverlap:      150,
		OutputDir:         "vectorstore",
		RequestsPerSecond: 2,
		Extractor:         "goquery",
	}
}

// Load reads a TOML file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, docdex.Errorf(docdex.EINVALID, "invalid config file %s: %s", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Roots) == 0 {
		return docdex.Errorf(docdex.EINVALID, "at least one crawl root required")
	}
	for _, rc := range c.Roots {
		root := rc.Root()
		if err := root.Validate(); err != nil {
			return err
		}
	}
	if c.ChunkSize <= 0 {
		return docdex.Errorf(docdex.EINVALID, "chunk size must be positive")
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return docdex.Errorf(docdex.EINVALID, "chunk overlap must be in [0, chunk size)")
	}
	if c.OutputDir == "" {
		return docdex.Errorf(docdex.EINVALID, "output directory required")
	}
	if c.RequestsPerSecond <= 0 {
		return docdex.Errorf(docdex.EINVALID, "requests per second must be positive")
	}
	switch c.Extractor {
	case "goquery", "readability":
	default:
		return docdex.Errorf(docdex.EINVALID, "unknown extractor %q", c.Extractor)
	}
	return nil
}

// Root converts the config entry to a docdex.Root.
func (rc RootConfig) Root() docdex.Root {
	return docdex.Root{URL: rc.URL, MaxPages: rc.MaxPages, UseSitemap: rc.UseSitemap}
}

// CrawlRoots returns the configured roots as docdex.Root values.
func (c *Config) CrawlRoots() []docdex.Root {
	roots := make([]docdex.Root, 0, len(c.Roots))
	for _, rc := range c.Roots {
		roots = append(roots, rc.Root())
	}
	return roots
}

// Filter builds the URL exclusion filter from the configuration.
func (c *Config) Filter() *docdex.ExcludeFilter {
	return &docdex.ExcludeFilter{
		LangHosts:    c.LangHosts,
		LangMarkers:  c.LangMarkers,
		AssetMarkers: c.AssetMarkers,
	}
}

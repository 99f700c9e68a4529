package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/crawl"
	"github.com/fwojciec/docdex/gemini"
	"github.com/fwojciec/docdex/goquery"
	dochttp "github.com/fwojciec/docdex/http"
	"github.com/fwojciec/docdex/readability"
	docslog "github.com/fwojciec/docdex/slog"
	"github.com/fwojciec/docdex/sqlite"
	"github.com/fwojciec/docdex/toml"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used by the crawler. Closed when Run returns.
	Fetcher docdex.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected subcommand, independent of flag placement on the command
	// line. kong appends argument placeholders ("stats <dir>"), so take the
	// first word.
	cmd = strings.Fields(kongCtx.Command())[0]

	// Load configuration
	cfg := toml.Default()
	if cli.Config != "" {
		cfg, err = toml.Load(cli.Config)
		if err != nil {
			return err
		}
	}
	deps.Config = cfg

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the crawler for commands that fetch pages
	if cmd == "build" || cmd == "preview" {
		var fetcher docdex.Fetcher = dochttp.NewFetcher()
		if cli.Verbose {
			fetcher = docslog.NewLoggingFetcher(fetcher, logger)
		}
		m.Fetcher = fetcher
		defer m.Close()

		var extractor docdex.Extractor
		switch cfg.Extractor {
		case "readability":
			extractor = readability.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:         fetcher,
			Extractor:       extractor,
			Links:           goquery.NewLinkExtractor(),
			Filter:          cfg.Filter(),
			AllowedPrefixes: cfg.AllowedPrefixes,
			Sitemaps:        docslog.NewLoggingSitemapService(dochttp.NewSitemapService(nil), logger),
			RateLimiter:     crawl.NewDomainLimiter(cfg.RequestsPerSecond),
		}
	}

	// The build command embeds chunks and needs a Gemini client
	if cmd == "build" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Embedder = docslog.NewLoggingEmbedder(gemini.NewEmbedder(client), logger)
		deps.Index = sqlite.NewIndex()
	}

	return kongCtx.Run(deps)
}

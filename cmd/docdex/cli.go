package main

import (
	"context"
	"io"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/pipeline"
	"github.com/fwojciec/docdex/toml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *toml.Config
	Crawler  pipeline.Crawler
	Embedder docdex.Embedder
	Index    docdex.IndexStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"Path to TOML config file (defaults to the built-in FreeCAD corpus)"`
	Verbose bool   `short:"v" help:"Log fetches and embedding batches"`

	Build   BuildCmd   `cmd:"" help:"Crawl, embed and save the corpus index"`
	Preview PreviewCmd `cmd:"" help:"Crawl without embedding; print visited URLs"`
	Stats   StatsCmd   `cmd:"" help:"Show statistics for a saved index"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory (overrides config)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Dir string `arg:"" optional:"" help:"Index directory (defaults to the configured output directory)"`
}

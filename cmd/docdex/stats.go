package main

import (
	"fmt"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/sqlite"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = deps.Config.OutputDir
	}

	ix, err := sqlite.LoadIndex(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	chunks := ix.Chunks()
	sources := make(map[string]struct{})
	dimension := 0
	for _, chunk := range chunks {
		sources[chunk.Metadata.Source] = struct{}{}
		if dimension == 0 {
			dimension = len(chunk.Embedding)
		}
	}

	fmt.Fprintf(deps.Stdout, "Index: %s\n", dir)
	fmt.Fprintf(deps.Stdout, "Chunks: %d\n", len(chunks))
	fmt.Fprintf(deps.Stdout, "Sources: %d\n", len(sources))
	fmt.Fprintf(deps.Stdout, "Dimension: %d\n", dimension)
	return nil
}

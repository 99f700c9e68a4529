package docdex

import "context"

// IndexStore accumulates embedded chunks and persists them durably.
// The index is rebuilt from scratch each run; entries are write-once.
type IndexStore interface {
	// Add appends entries to the in-memory index.
	Add(chunks ...Chunk)

	// Len returns the number of accumulated entries.
	Len() int

	// Save serializes the whole index into dir, creating the directory if
	// absent. Save is a single non-streaming write at the end of a run.
	Save(ctx context.Context, dir string) error
}

package docdex

import "context"

// Embedder converts chunk texts into fixed-dimensional numeric vectors.
type Embedder interface {
	// EmbedTexts returns one vector per input text, in input order.
	// A failure here is fatal to the run; no texts are silently dropped.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

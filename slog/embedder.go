package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docdex"
)

// Ensure LoggingEmbedder implements docdex.Embedder.
var _ docdex.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with batch logging.
type LoggingEmbedder struct {
	next   docdex.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next docdex.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedTexts delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedTexts(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed",
			"texts", len(texts),
			"vectors", len(vectors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedTexts(ctx, texts)
}

package gemini

import (
	"context"

	"github.com/fwojciec/docdex"
	"google.golang.org/genai"
)

const model = "gemini-embedding-001"

// batchSize is the maximum number of texts per EmbedContent request
// accepted by the Gemini API.
const batchSize = 100

// Ensure Embedder implements docdex.Embedder at compile time.
var _ docdex.Embedder = (*Embedder)(nil)

// Embedder implements docdex.Embedder using Google Gemini.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
}

// EmbedTexts embeds the given texts, batching requests to stay within the
// API's per-request limit. The returned vectors are index-aligned with texts.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, docdex.Errorf(docdex.EINVALID, "no texts to embed")
	}
	for i, text := range texts {
		if text == "" {
			return nil, docdex.Errorf(docdex.EINVALID, "empty text at index %d", i)
		}
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := e.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

func (e *Embedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, "user"))
	}

	result, err := e.client.Models.EmbedContent(ctx, model, contents, nil)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, docdex.Errorf(docdex.EINTERNAL, "gemini returned nil result")
	}
	if len(result.Embeddings) != len(texts) {
		return nil, docdex.Errorf(docdex.EINTERNAL, "gemini returned %d embeddings for %d texts", len(result.Embeddings), len(texts))
	}

	vectors := make([][]float32, 0, len(texts))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, docdex.Errorf(docdex.EINTERNAL, "gemini returned empty embedding at index %d", i)
		}
		vectors = append(vectors, emb.Values)
	}

	return vectors, nil
}

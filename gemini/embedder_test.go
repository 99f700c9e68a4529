package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_EmbedTexts_ReturnsErrorWhenNoTexts(t *testing.T) {
	t.Parallel()

	embedder := gemini.NewEmbedder(nil) // nil client ok for this test

	_, err := embedder.EmbedTexts(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	assert.Contains(t, docdex.ErrorMessage(err), "no texts")
}

func TestEmbedder_EmbedTexts_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	embedder := gemini.NewEmbedder(nil)

	_, err := embedder.EmbedTexts(context.Background(), []string{"first chunk", ""})

	require.Error(t, err)
	assert.Equal(t, docdex.EINVALID, docdex.ErrorCode(err))
	assert.Contains(t, docdex.ErrorMessage(err), "index 1")
}

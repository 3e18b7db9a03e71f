// Package ai wraps the OpenAI API behind the narrow interfaces the rest of
// the pipeline needs: a text embedder for semantic role matching and an LLM
// client for description analysis.
package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder embeds a short text into a dense vector.
type Embedder struct {
	embedder embeddings.Embedder
}

// NewEmbedder creates an embedder backed by the given OpenAI embedding model
// (e.g. "text-embedding-3-small").
func NewEmbedder(apiKey, model string) (*Embedder, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return &Embedder{embedder: embedder}, nil
}

// Embed returns the vector for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	return vec, nil
}

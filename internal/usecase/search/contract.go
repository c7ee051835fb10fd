package search

import (
	"context"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// Planner normalizes a raw query and derives its retrieval variants.
type Planner interface {
	Plan(raw string) (normalized string, variants []domain.Variant, err error)
}

// Retriever queries the hybrid index with one embedded variant.
// The terms slice carries the sparse side of the probe and may be empty.
type Retriever interface {
	Query(ctx context.Context, vector []float32, terms []string, topN int) ([]domain.Hit, error)
}

// TextFetcher resolves a document id to its stored full text.
type TextFetcher interface {
	Fetch(ctx context.Context, docID string) (domain.HydratedDocument, error)
}

// Embedder vectorizes variant text (see domain.Embedder).
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

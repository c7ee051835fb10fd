package domain

import "context"

// RerankCandidate pairs a document with the text excerpt scored by the
// cross-encoder. Excerpt is a deterministic bounded-length slice of the full
// text, so reranking over long documents is lossy by construction.
type RerankCandidate struct {
	DocID   string
	Excerpt string
}

// Reranker scores (query, excerpt) pairs with a cross-attention relevance
// model. Scores are returned positionally, one per candidate, normalized into
// [0,1]. Implementations must be safe for concurrent use; callers treat any
// error as ErrRerankUnavailable and fall back to vector-only ordering.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []RerankCandidate) ([]float64, error)
	ModelName() string
}

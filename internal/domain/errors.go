package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or unusable search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound signals a missing document in the text store.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrRetrievalUnavailable signals that every query variant failed against the index.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
	// ErrRerankUnavailable signals a reranking model failure.
	// Absorbed inside the pipeline: callers fall back to vector-only ordering.
	ErrRerankUnavailable = errors.New("rerank unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

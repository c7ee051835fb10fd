package drivesearch

import "github.com/kailas-cloud/drivesearch/internal/domain"

// Sentinel errors re-exported for errors.Is checks by SDK callers.
var (
	ErrInvalidQuery         = domain.ErrInvalidQuery
	ErrDocumentNotFound     = domain.ErrDocumentNotFound
	ErrRetrievalUnavailable = domain.ErrRetrievalUnavailable
	ErrEmbeddingProvider    = domain.ErrEmbeddingProviderError
)

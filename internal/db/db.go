package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces, never on Store directly.
type Store interface {
	Pinger
	KVStore
	JSONStore
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
// This service only ever reads document keys; Set/SetWithTTL exist for the
// embedding cache, which is the single piece of state the gateway writes.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// JSONStore provides read access to JSON document records.
type JSONStore interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
}

// Searcher provides read-only search over FT indexes.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchBM25(ctx context.Context, q *TextQuery) (*SearchResult, error)
	SupportsTextSearch(ctx context.Context) bool
}

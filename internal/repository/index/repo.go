// Package index adapts the database search surface into the hybrid
// retriever consumed by the search pipeline.
package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/drivesearch/internal/db"
	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// store is the consumer interface for index queries (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchBM25(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SupportsTextSearch(ctx context.Context) bool
}

// Repo implements usecase/search.Retriever over one FT index. A probe is
// hybrid: a dense KNN query, plus a BM25 keyword query when the variant has
// sparse terms and the backend supports text search.
type Repo struct {
	store     store
	indexName string
	keyPrefix string
}

// New creates an index repository.
func New(s store, indexName, keyPrefix string) *Repo {
	return &Repo{store: s, indexName: indexName, keyPrefix: keyPrefix}
}

// Query runs the hybrid probe and merges both sides by document id.
// Dense hits keep their cosine similarity; documents surfaced only by the
// keyword side get their unbounded BM25 score squashed into [0,1) via
// s/(s+1), so every hit the aggregator sees carries a comparable score.
func (r *Repo) Query(ctx context.Context, vector []float32, terms []string, topN int) ([]domain.Hit, error) {
	dense, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName,
		Vector:       vector,
		K:            topN,
		ReturnFields: []string{"__vector_score"},
	})
	if err != nil {
		return nil, fmt.Errorf("search knn %s: %w", r.indexName, err)
	}

	hits := make([]domain.Hit, 0, len(dense.Entries))
	seen := make(map[string]struct{}, len(dense.Entries))
	for _, e := range dense.Entries {
		id := r.docID(e.Key)
		hits = append(hits, domain.Hit{DocID: id, Score: clamp01(e.Score)})
		seen[id] = struct{}{}
	}

	if len(terms) == 0 || !r.store.SupportsTextSearch(ctx) {
		return hits, nil
	}

	sparse, err := r.store.SearchBM25(ctx, &db.TextQuery{
		IndexName: r.indexName,
		Terms:     terms,
		TopK:      topN,
	})
	if err != nil {
		// The dense side already answered; losing the keyword side only
		// costs recall.
		return hits, nil
	}

	for _, e := range sparse.Entries {
		id := r.docID(e.Key)
		if _, ok := seen[id]; ok {
			continue
		}
		hits = append(hits, domain.Hit{DocID: id, Score: squashBM25(e.Score)})
	}

	return hits, nil
}

func (r *Repo) docID(key string) string {
	return strings.TrimPrefix(key, r.keyPrefix)
}

// squashBM25 maps an unbounded non-negative BM25 score into [0,1),
// monotonically.
func squashBM25(s float64) float64 {
	if s < 0 {
		return 0
	}
	return s / (s + 1)
}

func clamp01(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/drivesearch/internal/domain"
	"github.com/kailas-cloud/drivesearch/internal/metrics"
)

// maxFanOut bounds concurrent variant retrievals.
const maxFanOut = 5

// variantHits is one settled fan-out slot: either hits or a captured error.
type variantHits struct {
	variant domain.Variant
	hits    []domain.Hit
	err     error
}

// fanOut retrieves every variant concurrently and settles all of them.
// A failed variant keeps its error in the slot; siblings are never aborted.
func (s *Service) fanOut(ctx context.Context, variants []domain.Variant, topN int) []variantHits {
	slots := make([]variantHits, len(variants))

	var g errgroup.Group
	g.SetLimit(maxFanOut)
	for i, v := range variants {
		g.Go(func() error {
			vctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
			defer cancel()
			slots[i] = s.retrieveVariant(vctx, v, topN)
			return nil
		})
	}
	// Tasks capture failures in their slot and always return nil.
	_ = g.Wait()

	return slots
}

// retrieveVariant embeds the variant text and queries the hybrid index.
func (s *Service) retrieveVariant(ctx context.Context, v domain.Variant, topN int) variantHits {
	out := variantHits{variant: v}

	emb, err := s.embed.Embed(ctx, v.Text)
	if err != nil {
		metrics.VariantRetrievalsTotal.WithLabelValues(string(v.Kind), "embed_error").Inc()
		out.err = fmt.Errorf("embed variant: %w", err)
		return out
	}

	hits, err := s.retriever.Query(ctx, emb.Embedding, v.Terms, topN)
	if err != nil {
		metrics.VariantRetrievalsTotal.WithLabelValues(string(v.Kind), "query_error").Inc()
		out.err = fmt.Errorf("query index: %w", err)
		return out
	}

	metrics.VariantRetrievalsTotal.WithLabelValues(string(v.Kind), "success").Inc()
	out.hits = hits
	return out
}

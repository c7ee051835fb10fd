package search

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/drivesearch/internal/domain"
	"github.com/kailas-cloud/drivesearch/internal/logger"
	"github.com/kailas-cloud/drivesearch/internal/metrics"
)

// blend fuses the vector and rerank scores as a convex combination weighted
// by vectorWeight. Monotonic in both inputs; with both scores in [0,1] the
// fused score stays in [0,1], so neither signal can dominate outright.
func blend(vectorScore, rerankScore, vectorWeight float64) float64 {
	return vectorWeight*vectorScore + (1-vectorWeight)*rerankScore
}

// rerankAndFuse scores each hydrated candidate against the normalized query
// with the cross-encoder and fuses the result with the vector score. On
// model failure it falls back to vector-only ordering and reports false.
func (s *Service) rerankAndFuse(
	ctx context.Context,
	normalized string,
	candidates []domain.Candidate,
	docs map[string]domain.HydratedDocument,
) ([]domain.RankedResult, bool) {
	// Candidates that failed hydration are out of consideration.
	kept := make([]domain.Candidate, 0, len(candidates))
	pairs := make([]domain.RerankCandidate, 0, len(candidates))
	for _, c := range candidates {
		doc, ok := docs[c.DocID]
		if !ok {
			continue
		}
		kept = append(kept, c)
		pairs = append(pairs, domain.RerankCandidate{
			DocID:   c.DocID,
			Excerpt: excerpt(doc.Text, s.excerptChars),
		})
	}
	if len(kept) == 0 {
		return nil, true
	}

	scores, reranked := s.rerankScores(ctx, normalized, pairs)

	results := make([]domain.RankedResult, len(kept))
	for i, c := range kept {
		doc := docs[c.DocID]
		r := domain.RankedResult{
			DocID:       c.DocID,
			VectorScore: c.BestScore,
			FileName:    doc.FileName,
			FilePath:    doc.FilePath,
			Modified:    doc.Modified,
			Preview:     excerpt(doc.Text, s.previewChars),
			CharLength:  doc.CharLength(),
		}
		if reranked {
			r.RerankScore = scores[i]
			r.FusedScore = blend(c.BestScore, scores[i], s.blendWeight)
		} else {
			r.FusedScore = c.BestScore
		}
		results[i] = r
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FusedScore != results[j].FusedScore {
			return results[i].FusedScore > results[j].FusedScore
		}
		return results[i].DocID < results[j].DocID
	})

	return results, reranked
}

// rerankScores invokes the cross-encoder, degrading to no-rerank on any
// failure or when no model is configured.
func (s *Service) rerankScores(ctx context.Context, normalized string, pairs []domain.RerankCandidate) ([]float64, bool) {
	if s.reranker == nil {
		metrics.RerankFallbacksTotal.Inc()
		return nil, false
	}

	rctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
	defer cancel()

	start := time.Now()
	scores, err := s.reranker.Rerank(rctx, normalized, pairs)
	metrics.RerankDuration.Observe(time.Since(start).Seconds())

	if err != nil || len(scores) != len(pairs) {
		metrics.RerankFallbacksTotal.Inc()
		logger.FromContext(ctx).Warn("reranker unavailable, falling back to vector order",
			zap.Error(err),
			zap.String("model", s.reranker.ModelName()),
		)
		return nil, false
	}
	return scores, true
}

// excerpt returns the deterministic leading slice of text used for reranking
// and previews. Truncation is lossy for long documents.
func excerpt(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n]
}

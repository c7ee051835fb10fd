package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/drivesearch/internal/domain"
	"github.com/kailas-cloud/drivesearch/internal/logger"
	"github.com/kailas-cloud/drivesearch/internal/metrics"
)

// Tuning defaults. The overfetch cap bounds reranking cost regardless of the
// caller's topK.
const (
	DefaultOverfetchFactor = 4
	DefaultOverfetchCap    = 20
	DefaultExcerptChars    = 1000
	DefaultPreviewChars    = 2000
	DefaultBlendWeight     = 0.5
	DefaultStageTimeout    = 10 * time.Second
)

// Service runs the query-enhancement pipeline: plan variants, fan out
// retrieval, aggregate candidates, hydrate text, rerank and fuse.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	planner   Planner
	retriever Retriever
	docs      TextFetcher
	embed     Embedder
	reranker  domain.Reranker

	overfetchFactor int
	overfetchCap    int
	excerptChars    int
	previewChars    int
	blendWeight     float64
	stageTimeout    time.Duration
}

// New creates a search service. reranker may be nil, in which case every
// search degrades to vector-only ordering and is flagged unreranked.
func New(planner Planner, retriever Retriever, docs TextFetcher, embed Embedder, reranker domain.Reranker) *Service {
	return &Service{
		planner:         planner,
		retriever:       retriever,
		docs:            docs,
		embed:           embed,
		reranker:        reranker,
		overfetchFactor: DefaultOverfetchFactor,
		overfetchCap:    DefaultOverfetchCap,
		excerptChars:    DefaultExcerptChars,
		previewChars:    DefaultPreviewChars,
		blendWeight:     DefaultBlendWeight,
		stageTimeout:    DefaultStageTimeout,
	}
}

// WithOverfetch tunes the overfetch multiplier and its absolute cap.
func (s *Service) WithOverfetch(factor, cap int) *Service {
	if factor > 0 {
		s.overfetchFactor = factor
	}
	if cap > 0 {
		s.overfetchCap = cap
	}
	return s
}

// WithBlendWeight tunes the share of the vector score in the fused score.
func (s *Service) WithBlendWeight(w float64) *Service {
	if w >= 0 && w <= 1 {
		s.blendWeight = w
	}
	return s
}

// WithExcerpt tunes the rerank excerpt and result preview lengths.
func (s *Service) WithExcerpt(excerptChars, previewChars int) *Service {
	if excerptChars > 0 {
		s.excerptChars = excerptChars
	}
	if previewChars > 0 {
		s.previewChars = previewChars
	}
	return s
}

// WithStageTimeout bounds each external call (per-variant retrieval,
// per-document fetch, rerank invocation).
func (s *Service) WithStageTimeout(d time.Duration) *Service {
	if d > 0 {
		s.stageTimeout = d
	}
	return s
}

// Search runs the full pipeline and returns the topK ranked results.
// Per-variant and per-document failures degrade the result and surface as
// warnings; only an invalid query or a total retrieval failure is an error.
func (s *Service) Search(ctx context.Context, rawQuery string, topK int) (domain.SearchOutput, error) {
	log := logger.FromContext(ctx)

	normalized, variants, err := s.planner.Plan(rawQuery)
	if err != nil {
		return domain.SearchOutput{}, fmt.Errorf("plan query: %w", err)
	}

	fetchCount := topK * s.overfetchFactor
	if fetchCount > s.overfetchCap {
		fetchCount = s.overfetchCap
	}

	retrieved := s.fanOut(ctx, variants, fetchCount)

	var warnings []string
	failures := 0
	for _, r := range retrieved {
		if r.err != nil {
			failures++
			warnings = append(warnings, fmt.Sprintf("variant %q: retrieval failed", r.variant.Kind))
			log.Warn("variant retrieval failed",
				zap.String("kind", string(r.variant.Kind)),
				zap.Error(r.err),
			)
		}
	}
	if failures == len(retrieved) {
		return domain.SearchOutput{}, fmt.Errorf("all %d variants failed: %w", failures, domain.ErrRetrievalUnavailable)
	}

	candidates := aggregate(retrieved)
	if len(candidates) > fetchCount {
		candidates = candidates[:fetchCount]
	}

	out := domain.SearchOutput{
		VariantsTried: len(variants),
		Warnings:      warnings,
	}
	if len(candidates) == 0 {
		out.Reranked = true // nothing to rerank is not a degradation
		return out, nil
	}

	hydrated, dropped := s.hydrate(ctx, candidates)
	for _, id := range dropped {
		out.Warnings = append(out.Warnings, fmt.Sprintf("document %q: hydration failed", id))
	}

	results, reranked := s.rerankAndFuse(ctx, normalized, candidates, hydrated)
	out.Reranked = reranked

	if len(results) > topK {
		results = results[:topK]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	out.Results = results

	log.Info("search pipeline complete",
		zap.Int("variants", len(variants)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
		zap.Bool("reranked", reranked),
	)
	return out, nil
}

// hydrate fetches full text for the candidates under consideration, one
// fetch per unique id. A miss drops the candidate, never the request.
func (s *Service) hydrate(ctx context.Context, candidates []domain.Candidate) (map[string]domain.HydratedDocument, []string) {
	log := logger.FromContext(ctx)
	docs := make(map[string]domain.HydratedDocument, len(candidates))
	var dropped []string

	for _, c := range candidates {
		if _, ok := docs[c.DocID]; ok {
			continue
		}

		fctx, cancel := context.WithTimeout(ctx, s.stageTimeout)
		doc, err := s.docs.Fetch(fctx, c.DocID)
		cancel()
		if err != nil {
			metrics.HydrationMissesTotal.Inc()
			dropped = append(dropped, c.DocID)
			log.Warn("document hydration failed", zap.String("doc_id", c.DocID), zap.Error(err))
			continue
		}
		docs[c.DocID] = doc
	}
	return docs, dropped
}

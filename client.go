package drivesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/drivesearch/internal/db"
	dbRedis "github.com/kailas-cloud/drivesearch/internal/db/redis"
	"github.com/kailas-cloud/drivesearch/internal/domain"
	"github.com/kailas-cloud/drivesearch/internal/repository/docstore"
	indexrepo "github.com/kailas-cloud/drivesearch/internal/repository/index"
	documentuc "github.com/kailas-cloud/drivesearch/internal/usecase/document"
	queryuc "github.com/kailas-cloud/drivesearch/internal/usecase/query"
	searchuc "github.com/kailas-cloud/drivesearch/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "drivesearch:doc:"
	defaultIndexName        = "drivesearch-docs"
)

// Client is the drivesearch SDK entry point.
type Client struct {
	store     db.Store
	querySvc  *queryuc.Service
	searchSvc *searchuc.Service
	docSvc    *documentuc.Service
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix: defaultKeyPrefix,
		indexName: defaultIndexName,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("drivesearch: database address required (use WithAddrs)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("drivesearch: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("drivesearch: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	indexRepo := indexrepo.New(store, cfg.indexName, cfg.keyPrefix)
	docRepo := docstore.New(store, cfg.keyPrefix)

	// Embedder: noop if not configured, Search returns an error on use.
	var domEmb domain.Embedder = &noopEmbedder{}
	if cfg.embedder != nil {
		domEmb = &embedderAdapter{inner: cfg.embedder}
	}
	if cfg.queryInstruction != "" {
		domEmb = domain.NewInstructionEmbedder(domEmb, cfg.queryInstruction)
	}

	var domReranker domain.Reranker
	if cfg.reranker != nil {
		domReranker = &rerankerAdapter{inner: cfg.reranker}
	}

	querySvc := queryuc.New(queryuc.NewExpander(nil))
	searchSvc := searchuc.New(querySvc, indexRepo, docRepo, domEmb, domReranker)
	if cfg.blendWeight > 0 {
		searchSvc = searchSvc.WithBlendWeight(cfg.blendWeight)
	}
	if cfg.overfetchFactor > 0 || cfg.overfetchCap > 0 {
		searchSvc = searchSvc.WithOverfetch(cfg.overfetchFactor, cfg.overfetchCap)
	}
	if cfg.stageTimeout > 0 {
		searchSvc = searchSvc.WithStageTimeout(cfg.stageTimeout)
	}

	return &Client{
		store:     store,
		querySvc:  querySvc,
		searchSvc: searchSvc,
		docSvc:    documentuc.New(docRepo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs the full pipeline for query and returns the topK ranked
// results. topK values outside [1,20] are clamped.
func (c *Client) Search(ctx context.Context, query string, topK int) (Output, error) {
	if topK <= 0 {
		topK = 5
	}
	if topK > 20 {
		topK = 20
	}

	out, err := c.searchSvc.Search(ctx, query, topK)
	if err != nil {
		return Output{}, fmt.Errorf("search: %w", err)
	}
	return fromSearchOutput(out), nil
}

// Read returns the full document for id, including metadata and text.
func (c *Client) Read(ctx context.Context, id string) (Document, error) {
	doc, err := c.docSvc.Read(ctx, id)
	if err != nil {
		return Document{}, fmt.Errorf("read: %w", err)
	}
	return fromDocument(doc), nil
}

// Suggest returns optimized phrasings of query without touching the index.
func (c *Client) Suggest(_ context.Context, query string) ([]string, error) {
	suggestions, err := c.querySvc.Suggest(query)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return suggestions, nil
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// rerankerAdapter wraps the public Reranker to satisfy internal domain.Reranker.
type rerankerAdapter struct {
	inner Reranker
}

func (a *rerankerAdapter) Rerank(ctx context.Context, query string, candidates []domain.RerankCandidate) ([]float64, error) {
	pairs := make([]RerankPair, len(candidates))
	for i, c := range candidates {
		pairs[i] = RerankPair{DocID: c.DocID, Excerpt: c.Excerpt}
	}
	scores, err := a.inner.Rerank(ctx, query, pairs)
	if err != nil {
		return nil, fmt.Errorf("rerank: %w", err)
	}
	return scores, nil
}

func (a *rerankerAdapter) ModelName() string { return a.inner.ModelName() }

// noopEmbedder returns an error on Embed call (used when no embedder configured).
type noopEmbedder struct{}

func (noopEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, errors.New(
		"drivesearch: embedder not configured (use WithEmbedder)",
	)
}

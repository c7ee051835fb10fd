package drivesearch

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EmbedResult carries the embedding vector and token usage.
type EmbedResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Embedder vectorizes query text. Implementations must be safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbedResult, error)
}

// Reranker scores query/excerpt pairs. Scores are positional and must be
// normalized into [0,1].
type Reranker interface {
	Rerank(ctx context.Context, query string, pairs []RerankPair) ([]float64, error)
	ModelName() string
}

// RerankPair is one query/excerpt scoring input.
type RerankPair struct {
	DocID   string
	Excerpt string
}

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs            []string
	password         string
	keyPrefix        string
	indexName        string
	embedder         Embedder
	reranker         Reranker
	queryInstruction string
	blendWeight      float64
	overfetchFactor  int
	overfetchCap     int
	stageTimeout     time.Duration
	logger           *zap.Logger
}

// WithAddrs sets the Redis/Valkey addresses.
func WithAddrs(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithPassword sets the database password.
func WithPassword(password string) Option {
	return func(c *clientConfig) { c.password = password }
}

// WithKeyPrefix overrides the document key prefix (default "drivesearch:doc:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) { c.keyPrefix = prefix }
}

// WithIndexName overrides the FT index name (default "drivesearch-docs").
func WithIndexName(name string) Option {
	return func(c *clientConfig) { c.indexName = name }
}

// WithEmbedder sets the query embedder. Required for Search.
func WithEmbedder(e Embedder) Option {
	return func(c *clientConfig) { c.embedder = e }
}

// WithReranker sets the cross-encoder. Without one, results keep vector
// ordering and are flagged unreranked.
func WithReranker(r Reranker) Option {
	return func(c *clientConfig) { c.reranker = r }
}

// WithQueryInstruction prepends an instruction prefix before embedding,
// matching how the index was built.
func WithQueryInstruction(instruction string) Option {
	return func(c *clientConfig) { c.queryInstruction = instruction }
}

// WithBlendWeight tunes the share of the vector score in the fused score.
func WithBlendWeight(w float64) Option {
	return func(c *clientConfig) { c.blendWeight = w }
}

// WithOverfetch tunes the candidate overfetch multiplier and its cap.
func WithOverfetch(factor, cap int) Option {
	return func(c *clientConfig) {
		c.overfetchFactor = factor
		c.overfetchCap = cap
	}
}

// WithStageTimeout bounds each external call inside the pipeline.
func WithStageTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.stageTimeout = d }
}

// WithLogger sets the zap logger used by the pipeline (default zap.NewNop).
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

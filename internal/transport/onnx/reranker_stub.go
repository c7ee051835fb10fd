//go:build !cgo
// +build !cgo

package onnx

import (
	"context"
	"errors"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// CrossEncoder stub type when built without CGO (see reranker.go for the
// real implementation).
type CrossEncoder struct{}

// NewCrossEncoder returns an error when built without CGO.
func NewCrossEncoder(_, _ string, _ int) (*CrossEncoder, error) {
	return nil, errors.New("cross-encoder requires CGO; build with CGO_ENABLED=1 and onnxruntime")
}

func (c *CrossEncoder) Rerank(context.Context, string, []domain.RerankCandidate) ([]float64, error) {
	return nil, errors.New("cross-encoder not available without CGO")
}

func (c *CrossEncoder) ModelName() string { return "" }

func (c *CrossEncoder) Ready() bool { return false }

func (c *CrossEncoder) Close() error { return nil }

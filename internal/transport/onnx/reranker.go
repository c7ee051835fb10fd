//go:build cgo
// +build cgo

package onnx

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// CrossEncoder scores query/passage pairs with an ONNX cross-encoder model.
// It requires CGO and the onnxruntime shared library.
type CrossEncoder struct {
	session   *ort.AdvancedSession
	modelName string
	maxTokens int
	tokenizer Tokenizer
	// Pre-allocated tensors for Run(); input data is rewritten per pair.
	inputIDsTensor      *ort.Tensor[int64]
	attentionMaskTensor *ort.Tensor[int64]
	tokenTypeIDsTensor  *ort.Tensor[int64]
	outputTensor        *ort.Tensor[float32]
	mu                  sync.Mutex
}

// NewCrossEncoder creates a cross-encoder reranker. InitializeEnvironment
// is called if not already done.
func NewCrossEncoder(modelPath, modelName string, maxTokens int) (*CrossEncoder, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}

	tokenizer := &HashTokenizer{}
	inputIDs, attentionMask, tokenTypeIDs := tokenizer.TokenizePair("", "", maxTokens)

	inputIDsTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), inputIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	attentionMaskTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), attentionMask)
	if err != nil {
		inputIDsTensor.Destroy()
		return nil, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	tokenTypeIDsTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), tokenTypeIDs)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		return nil, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	outputTensor, err := ort.NewTensor(ort.NewShape(1, 1), make([]float32, 1))
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"logits"},
		[]ort.ArbitraryTensor{inputIDsTensor, attentionMaskTensor, tokenTypeIDsTensor},
		[]ort.ArbitraryTensor{outputTensor},
		nil,
	)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &CrossEncoder{
		session:             session,
		modelName:           modelName,
		maxTokens:           maxTokens,
		tokenizer:           tokenizer,
		inputIDsTensor:      inputIDsTensor,
		attentionMaskTensor: attentionMaskTensor,
		tokenTypeIDsTensor:  tokenTypeIDsTensor,
		outputTensor:        outputTensor,
	}, nil
}

// Rerank scores each candidate excerpt against the query. Scores are
// positional and normalized into [0,1].
func (c *CrossEncoder) Rerank(ctx context.Context, query string, candidates []domain.RerankCandidate) ([]float64, error) {
	scores := make([]float64, len(candidates))

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inputIDs, attentionMask, tokenTypeIDs := c.tokenizer.TokenizePair(query, cand.Excerpt, c.maxTokens)
		copy(c.inputIDsTensor.GetData(), inputIDs)
		copy(c.attentionMaskTensor.GetData(), attentionMask)
		copy(c.tokenTypeIDsTensor.GetData(), tokenTypeIDs)

		if err := c.session.Run(); err != nil {
			return nil, fmt.Errorf("rerank inference for %q: %w", cand.DocID, err)
		}

		scores[i] = normalizeLogit(c.outputTensor.GetData()[0])
	}

	return scores, nil
}

// ModelName returns the configured model identifier.
func (c *CrossEncoder) ModelName() string { return c.modelName }

// Ready reports whether the inference session is loaded.
func (c *CrossEncoder) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// Close destroys the session and tensors.
func (c *CrossEncoder) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.session != nil {
		err = c.session.Destroy()
		c.session = nil
	}
	if c.inputIDsTensor != nil {
		_ = c.inputIDsTensor.Destroy()
		c.inputIDsTensor = nil
	}
	if c.attentionMaskTensor != nil {
		_ = c.attentionMaskTensor.Destroy()
		c.attentionMaskTensor = nil
	}
	if c.tokenTypeIDsTensor != nil {
		_ = c.tokenTypeIDsTensor.Destroy()
		c.tokenTypeIDsTensor = nil
	}
	if c.outputTensor != nil {
		_ = c.outputTensor.Destroy()
		c.outputTensor = nil
	}
	return err
}

// Package onnx provides the cross-encoder reranker backed by ONNX Runtime.
package onnx

import "strings"

const (
	clsToken = 101
	sepToken = 102
	vocabCap = 30000
)

// Tokenizer produces BERT-style pair encodings for a cross-encoder
// (input_ids, attention_mask, token_type_ids).
type Tokenizer interface {
	TokenizePair(query, passage string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64)
}

// HashTokenizer is a word-split tokenizer with hash-based token IDs. It
// matches models exported with the same hashing vocabulary; it also serves
// tests without a real vocab file.
type HashTokenizer struct{}

// TokenizePair encodes "[CLS] query [SEP] passage [SEP]" padded to maxTokens.
// Query tokens get segment id 0, passage tokens segment id 1.
func (t *HashTokenizer) TokenizePair(query, passage string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64) {
	if maxTokens <= 0 {
		maxTokens = 256
	}
	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)

	inputIDs[0] = clsToken
	attentionMask[0] = 1

	pos := 1
	for _, word := range strings.Fields(query) {
		if pos >= maxTokens-2 {
			break
		}
		inputIDs[pos] = hashToken(word)
		attentionMask[pos] = 1
		pos++
	}

	if pos < maxTokens {
		inputIDs[pos] = sepToken
		attentionMask[pos] = 1
		pos++
	}

	for _, word := range strings.Fields(passage) {
		if pos >= maxTokens-1 {
			break
		}
		inputIDs[pos] = hashToken(word)
		attentionMask[pos] = 1
		tokenTypeIDs[pos] = 1
		pos++
	}

	if pos < maxTokens {
		inputIDs[pos] = sepToken
		attentionMask[pos] = 1
		tokenTypeIDs[pos] = 1
	}

	return inputIDs, attentionMask, tokenTypeIDs
}

func hashToken(word string) int64 {
	h := 0
	for _, c := range word {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	return int64(h % vocabCap)
}

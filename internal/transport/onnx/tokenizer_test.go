package onnx

import (
	"testing"
)

func TestHashTokenizer_TokenizePair(t *testing.T) {
	tok := &HashTokenizer{}
	ids, attn, types := tok.TokenizePair("tax forms", "form 1040 instructions", 16)

	if len(ids) != 16 || len(attn) != 16 || len(types) != 16 {
		t.Fatalf("unexpected lengths: %d %d %d", len(ids), len(attn), len(types))
	}
	if ids[0] != clsToken {
		t.Errorf("expected CLS at 0, got %d", ids[0])
	}
	if ids[3] != sepToken {
		t.Errorf("expected SEP after query tokens, got %d", ids[3])
	}
	// query segment 0, passage segment 1
	if types[1] != 0 || types[4] != 1 {
		t.Errorf("unexpected segment ids: %v", types)
	}
	if attn[0] != 1 {
		t.Error("attention[0] should be 1")
	}
}

func TestHashTokenizer_Truncation(t *testing.T) {
	tok := &HashTokenizer{}
	ids, _, _ := tok.TokenizePair(
		"a b c d e f g h i j",
		"k l m n o p q r s t",
		8,
	)
	if len(ids) != 8 {
		t.Fatalf("len(ids)=%d", len(ids))
	}
}

func TestHashTokenizer_Deterministic(t *testing.T) {
	tok := &HashTokenizer{}
	a, _, _ := tok.TokenizePair("tax", "forms", 8)
	b, _, _ := tok.TokenizePair("tax", "forms", 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tokenization must be deterministic, differ at %d", i)
		}
	}
}

func TestHashToken_Range(t *testing.T) {
	for _, w := range []string{"abc", "quarterly", "1040", "тест"} {
		id := hashToken(w)
		if id < 0 || id >= vocabCap {
			t.Errorf("hashToken(%q) = %d out of range", w, id)
		}
	}
}

func TestNormalizeLogit(t *testing.T) {
	cases := []struct {
		logit float32
		want  float64
	}{
		{-10, 0},
		{0, 0.5},
		{10, 1},
		{-25, 0},
		{25, 1},
	}
	for _, tc := range cases {
		if got := normalizeLogit(tc.logit); got != tc.want {
			t.Errorf("normalizeLogit(%v) = %v, want %v", tc.logit, got, tc.want)
		}
	}
	if normalizeLogit(-2) >= normalizeLogit(3) {
		t.Error("normalizeLogit must preserve ordering")
	}
}

package search

import "testing"

func TestBlend_Monotonic(t *testing.T) {
	const w = 0.5

	base := blend(0.5, 0.5, w)
	if blend(0.5, 0.6, w) < base {
		t.Error("raising the rerank score must not lower the fused score")
	}
	if blend(0.6, 0.5, w) < base {
		t.Error("raising the vector score must not lower the fused score")
	}
}

func TestBlend_Bounds(t *testing.T) {
	for _, w := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, v := range []float64{0, 0.5, 1} {
			for _, r := range []float64{0, 0.5, 1} {
				got := blend(v, r, w)
				if got < 0 || got > 1 {
					t.Fatalf("blend(%f, %f, %f) = %f out of [0,1]", v, r, w, got)
				}
			}
		}
	}
}

func TestBlend_NeitherScoreDominates(t *testing.T) {
	// A candidate with no vector support and a perfect rerank score must not
	// outrank one with strong support on both signals.
	weak := blend(0, 1, 0.5)
	strong := blend(0.8, 0.9, 0.5)
	if weak >= strong {
		t.Errorf("zero-vector candidate dominates: %f >= %f", weak, strong)
	}
}

func TestExcerpt(t *testing.T) {
	if got := excerpt("short", 1000); got != "short" {
		t.Errorf("short text must pass through, got %q", got)
	}
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}
	if got := excerpt(string(long), 1000); len(got) != 1000 {
		t.Errorf("expected 1000-char excerpt, got %d", len(got))
	}
	// Deterministic: same input, same slice.
	if excerpt(string(long), 1000) != excerpt(string(long), 1000) {
		t.Error("excerpt is not deterministic")
	}
}

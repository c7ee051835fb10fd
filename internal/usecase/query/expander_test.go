package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

func TestExpand_TaxScenario(t *testing.T) {
	normalized, err := Normalize("find my 2024 tax forms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	variants := NewExpander(nil).Expand(normalized)
	if len(variants) < 2 || len(variants) > 5 {
		t.Fatalf("expected 2..5 variants, got %d", len(variants))
	}

	if variants[0].Kind != domain.VariantEnriched {
		t.Errorf("expected first variant enriched, got %s", variants[0].Kind)
	}
	if !strings.Contains(variants[0].Text, "2024") ||
		!strings.Contains(variants[0].Text, "tax document IRS form fiscal year") {
		t.Errorf("enriched variant missing query or context terms: %q", variants[0].Text)
	}

	var keywordsText string
	for _, v := range variants {
		if v.Kind == domain.VariantKeywords {
			keywordsText = v.Text
		}
	}
	if keywordsText != "2024 tax forms" {
		t.Errorf("expected keywords variant %q, got %q", "2024 tax forms", keywordsText)
	}
}

func TestExpand_Deterministic(t *testing.T) {
	e := NewExpander(nil)
	first := e.Expand("quarterly budget meeting notes")
	for range 10 {
		if got := e.Expand("quarterly budget meeting notes"); !reflect.DeepEqual(got, first) {
			t.Fatal("Expand is not deterministic")
		}
	}
}

func TestExpand_DeduplicatesByText(t *testing.T) {
	// No context keyword matches and every token is a content token, so all
	// three derivations produce the same text.
	variants := NewExpander(nil).Expand("alpha beta")
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant after dedup, got %d", len(variants))
	}
	if variants[0].Kind != domain.VariantEnriched {
		t.Errorf("dedup must keep the earliest variant, got %s", variants[0].Kind)
	}
	if !reflect.DeepEqual(variants[0].Terms, []string{"alpha", "beta"}) {
		t.Errorf("unexpected sparse terms: %v", variants[0].Terms)
	}
}

func TestExpand_NeverEmpty(t *testing.T) {
	if got := NewExpander(nil).Expand("the"); len(got) == 0 {
		t.Fatal("expected at least one variant")
	}
}

func TestExpand_MultipleContextRules(t *testing.T) {
	variants := NewExpander(nil).Expand("budget meeting")
	enriched := variants[0].Text
	if !strings.Contains(enriched, "financial accounting expense") {
		t.Errorf("missing financial enrichment: %q", enriched)
	}
	if !strings.Contains(enriched, "meeting notes discussion agenda") {
		t.Errorf("missing meeting enrichment: %q", enriched)
	}
}

func TestSuggest(t *testing.T) {
	svc := New(NewExpander(nil))

	suggestions, err := svc.Suggest("find my 2024 tax forms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) < 2 || len(suggestions) > 5 {
		t.Fatalf("expected 2..5 suggestions, got %d", len(suggestions))
	}

	seen := make(map[string]struct{})
	for _, s := range suggestions {
		if _, dup := seen[s]; dup {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = struct{}{}
	}
}

func TestSuggest_InvalidQuery(t *testing.T) {
	if _, err := New(NewExpander(nil)).Suggest("   "); err == nil {
		t.Fatal("expected error")
	}
}

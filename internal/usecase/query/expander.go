package query

import (
	"strings"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// ContextRule appends enrichment terms when any of its trigger keywords
// occurs in the normalized query.
type ContextRule struct {
	Keywords []string
	Terms    string
}

// DefaultContextRules mirror the document clusters the index was built for.
// The table is an immutable startup artifact; Expand never mutates it.
func DefaultContextRules() []ContextRule {
	return []ContextRule{
		{
			Keywords: []string{"tax", "1099", "w-2", "w2", "w-9", "1040", "irs", "fiscal"},
			Terms:    "tax document IRS form fiscal year",
		},
		{
			Keywords: []string{"invoice", "receipt", "bill", "payment", "budget", "expense"},
			Terms:    "financial accounting expense",
		},
		{
			Keywords: []string{"meeting", "notes", "minutes", "agenda"},
			Terms:    "meeting notes discussion agenda",
		},
		{
			Keywords: []string{"project", "proposal", "plan", "roadmap"},
			Terms:    "project plan proposal strategy",
		},
		{
			Keywords: []string{"report", "analysis", "summary", "quarterly"},
			Terms:    "report analysis summary data",
		},
	}
}

// Expander derives retrieval probes from a normalized query.
type Expander struct {
	rules []ContextRule
}

// NewExpander creates an expander over the given context table.
// Passing nil uses DefaultContextRules.
func NewExpander(rules []ContextRule) *Expander {
	if rules == nil {
		rules = DefaultContextRules()
	}
	return &Expander{rules: rules}
}

// Expand returns the ordered variant sequence for a normalized query:
// enriched, cleaned, keywords. Variants with identical text collapse to the
// first occurrence, so the result has 1 to 3 entries and is never empty for
// a non-empty input. Pure and deterministic: no randomness, no I/O.
func (e *Expander) Expand(normalized string) []domain.Variant {
	variants := []domain.Variant{
		{Text: e.enrich(normalized), Kind: domain.VariantEnriched},
		{Text: normalized, Kind: domain.VariantCleaned},
	}

	if tokens := ContentTokens(normalized); len(tokens) > 0 {
		variants = append(variants, domain.Variant{
			Text: strings.Join(tokens, " "),
			Kind: domain.VariantKeywords,
		})
	}

	return dedupe(variants)
}

// enrich appends the context terms of every rule triggered by the query.
// Keyword matching is substring-based, so "w2" triggers inside "w2-form".
func (e *Expander) enrich(normalized string) string {
	text := normalized
	for _, rule := range e.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				text += " " + rule.Terms
				break
			}
		}
	}
	return text
}

// dedupe collapses variants with identical text, keeping generation order,
// and attaches the sparse search terms for each surviving variant.
func dedupe(variants []domain.Variant) []domain.Variant {
	seen := make(map[string]struct{}, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if _, ok := seen[v.Text]; ok {
			continue
		}
		seen[v.Text] = struct{}{}
		v.Terms = ContentTokens(v.Text)
		out = append(out, v)
	}
	return out
}

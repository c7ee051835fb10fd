package domain

// VariantKind tags how a query variant was derived from the normalized query.
type VariantKind string

const (
	// VariantEnriched is the normalized query plus domain-context terms.
	VariantEnriched VariantKind = "enriched"
	// VariantCleaned is the normalized query with filler stripped.
	VariantCleaned VariantKind = "cleaned"
	// VariantKeywords is the normalized query reduced to content tokens.
	VariantKeywords VariantKind = "keywords"
)

// Variant is one retrieval probe derived from the normalized query.
// Terms holds the stopword-filtered content tokens of Text; the index
// repository uses them as the sparse side of a hybrid query.
type Variant struct {
	Text  string
	Kind  VariantKind
	Terms []string
}

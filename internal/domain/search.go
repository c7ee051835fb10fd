package domain

// Hit is a single index match for one query variant.
// Score is a similarity in [0,1], higher is more relevant.
type Hit struct {
	DocID string
	Score float64
}

// Candidate is the per-document aggregate folded across all variants.
// BestScore is the maximum similarity observed for the document;
// Sources lists every variant kind that produced a hit, in first-seen order.
type Candidate struct {
	DocID     string
	BestScore float64
	Sources   []VariantKind
}

// FromVariant records that kind contributed a hit for this candidate.
func (c *Candidate) FromVariant(kind VariantKind) {
	for _, k := range c.Sources {
		if k == kind {
			return
		}
	}
	c.Sources = append(c.Sources, kind)
}

// RankedResult is one entry of the final ordering returned by Search.
// Rank is 1-based; FusedScore is the blend of VectorScore and RerankScore.
type RankedResult struct {
	DocID       string
	VectorScore float64
	RerankScore float64
	FusedScore  float64
	Rank        int

	FileName   string
	FilePath   string
	Modified   string
	Preview    string
	CharLength int
}

// SearchOutput carries the ranked results plus partial-degradation metadata.
// Reranked is false when the cross-encoder was unavailable and ordering fell
// back to vector similarity alone.
type SearchOutput struct {
	Results       []RankedResult
	Reranked      bool
	VariantsTried int
	Warnings      []string
}

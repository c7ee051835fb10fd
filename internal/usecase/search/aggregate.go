package search

import (
	"sort"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// aggregate folds per-variant hit lists into one candidate per document.
// BestScore is the maximum similarity observed across variants and Sources
// accumulates every contributing variant kind. Output is ordered by score
// descending, id ascending, so identical input always yields identical output.
func aggregate(retrieved []variantHits) []domain.Candidate {
	index := make(map[string]int)
	var candidates []domain.Candidate

	for _, vh := range retrieved {
		for _, hit := range vh.hits {
			if i, ok := index[hit.DocID]; ok {
				c := &candidates[i]
				if hit.Score > c.BestScore {
					c.BestScore = hit.Score
				}
				c.FromVariant(vh.variant.Kind)
				continue
			}

			index[hit.DocID] = len(candidates)
			candidates = append(candidates, domain.Candidate{
				DocID:     hit.DocID,
				BestScore: hit.Score,
				Sources:   []domain.VariantKind{vh.variant.Kind},
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].BestScore != candidates[j].BestScore {
			return candidates[i].BestScore > candidates[j].BestScore
		}
		return candidates[i].DocID < candidates[j].DocID
	})

	return candidates
}

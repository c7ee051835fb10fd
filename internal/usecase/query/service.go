package query

import (
	"fmt"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// Service plans retrieval probes and exposes query suggestions.
// It is pure: Plan and Suggest never touch the network or the index.
type Service struct {
	expander *Expander
}

// New creates a query planning service.
func New(expander *Expander) *Service {
	return &Service{expander: expander}
}

// Plan normalizes the raw query and derives its variant sequence.
func (s *Service) Plan(raw string) (string, []domain.Variant, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return "", nil, fmt.Errorf("normalize query: %w", err)
	}
	return normalized, s.expander.Expand(normalized), nil
}

// Suggest returns the variant texts as optimized query suggestions.
func (s *Service) Suggest(raw string) ([]string, error) {
	_, variants, err := s.Plan(raw)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(variants))
	for _, v := range variants {
		suggestions = append(suggestions, v.Text)
	}
	return suggestions, nil
}

// Package document exposes reads of single documents by id.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// Service handles document reads.
type Service struct {
	fetcher Fetcher
}

// New creates a document service.
func New(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Read returns the full document for id, including metadata and text.
// Returns domain.ErrInvalidQuery for a blank id and
// domain.ErrDocumentNotFound when no document exists.
func (s *Service) Read(ctx context.Context, id string) (domain.HydratedDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.HydratedDocument{}, fmt.Errorf("document id is empty: %w", domain.ErrInvalidQuery)
	}

	doc, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return domain.HydratedDocument{}, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}

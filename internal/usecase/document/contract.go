package document

import (
	"context"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// Fetcher loads full documents from the document store.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (domain.HydratedDocument, error)
}

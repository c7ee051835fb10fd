// Package docstore hydrates documents from the JSON document store.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/drivesearch/internal/db"
	"github.com/kailas-cloud/drivesearch/internal/domain"
)

type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
}

// Repo implements document hydration over a JSON store.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a document store repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// stored document shape, as written by the indexing pipeline.
type docDTO struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Modified string `json:"modified"`
	Text     string `json:"text"`
}

// Fetch loads the full document for id. Returns domain.ErrDocumentNotFound
// when the key does not exist.
func (r *Repo) Fetch(ctx context.Context, id string) (domain.HydratedDocument, error) {
	raw, err := r.store.JSONGet(ctx, r.keyPrefix+id)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.HydratedDocument{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
		}
		return domain.HydratedDocument{}, fmt.Errorf("fetch document %q: %w", id, err)
	}

	var dto docDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domain.HydratedDocument{}, fmt.Errorf("decode document %q: %w", id, err)
	}

	return domain.HydratedDocument{
		ID:       id,
		FileName: dto.FileName,
		FilePath: dto.FilePath,
		Modified: dto.Modified,
		Text:     dto.Text,
	}, nil
}

package document

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

type mockFetcher struct {
	docs map[string]domain.HydratedDocument
}

func (m *mockFetcher) Fetch(_ context.Context, id string) (domain.HydratedDocument, error) {
	doc, ok := m.docs[id]
	if !ok {
		return domain.HydratedDocument{}, fmt.Errorf("document %q: %w", id, domain.ErrDocumentNotFound)
	}
	return doc, nil
}

func TestRead(t *testing.T) {
	svc := New(&mockFetcher{docs: map[string]domain.HydratedDocument{
		"a": {ID: "a", FileName: "report.docx", Text: "quarterly numbers"},
	}})

	doc, err := svc.Read(context.Background(), "a")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.FileName != "report.docx" || doc.Text != "quarterly numbers" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRead_TrimsID(t *testing.T) {
	svc := New(&mockFetcher{docs: map[string]domain.HydratedDocument{
		"a": {ID: "a"},
	}})

	if _, err := svc.Read(context.Background(), "  a  "); err != nil {
		t.Fatalf("Read with padded id: %v", err)
	}
}

func TestRead_EmptyID(t *testing.T) {
	svc := New(&mockFetcher{})

	_, err := svc.Read(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRead_NotFound(t *testing.T) {
	svc := New(&mockFetcher{})

	_, err := svc.Read(context.Background(), "missing")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

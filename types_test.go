package drivesearch

import (
	"testing"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

func TestFromSearchOutput(t *testing.T) {
	in := domain.SearchOutput{
		Results: []domain.RankedResult{
			{
				DocID:       "doc-1",
				Rank:        1,
				VectorScore: 0.8,
				RerankScore: 0.6,
				FusedScore:  0.7,
				FileName:    "taxes.pdf",
				FilePath:    "/finance/taxes.pdf",
				Modified:    "2024-03-01T10:00:00Z",
				Preview:     "form 1099",
				CharLength:  9,
			},
		},
		Reranked:      true,
		VariantsTried: 3,
		Warnings:      []string{"variant \"keywords\": retrieval failed"},
	}

	out := fromSearchOutput(in)

	if len(out.Results) != 1 {
		t.Fatalf("results len = %d, want 1", len(out.Results))
	}
	r := out.Results[0]
	if r.DocID != "doc-1" || r.Rank != 1 {
		t.Errorf("unexpected result identity: %+v", r)
	}
	if r.FusedScore != 0.7 || r.VectorScore != 0.8 || r.RerankScore != 0.6 {
		t.Errorf("unexpected scores: %+v", r)
	}
	if r.FileName != "taxes.pdf" || r.Preview != "form 1099" || r.CharLength != 9 {
		t.Errorf("unexpected metadata: %+v", r)
	}
	if !out.Reranked || out.VariantsTried != 3 || len(out.Warnings) != 1 {
		t.Errorf("unexpected output metadata: %+v", out)
	}
}

func TestFromSearchOutput_Empty(t *testing.T) {
	out := fromSearchOutput(domain.SearchOutput{VariantsTried: 2})
	if len(out.Results) != 0 {
		t.Errorf("results len = %d, want 0", len(out.Results))
	}
	if out.VariantsTried != 2 {
		t.Errorf("variants tried = %d, want 2", out.VariantsTried)
	}
}

func TestFromDocument(t *testing.T) {
	doc := fromDocument(domain.HydratedDocument{
		ID:       "doc-2",
		FileName: "notes.txt",
		FilePath: "/meetings/notes.txt",
		Modified: "2024-05-20T09:30:00Z",
		Text:     "agenda items",
	})

	if doc.ID != "doc-2" || doc.FileName != "notes.txt" {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.CharLength != len("agenda items") {
		t.Errorf("char length = %d, want %d", doc.CharLength, len("agenda items"))
	}
}

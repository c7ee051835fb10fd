package drivesearch

import "github.com/kailas-cloud/drivesearch/internal/domain"

// Result is one ranked document returned by Search.
type Result struct {
	DocID       string
	Rank        int
	VectorScore float64
	RerankScore float64
	FusedScore  float64
	FileName    string
	FilePath    string
	Modified    string
	Preview     string
	CharLength  int
}

// Output carries the ranked results plus pipeline metadata.
type Output struct {
	Results       []Result
	Reranked      bool
	VariantsTried int
	Warnings      []string
}

// Document is a fully hydrated document returned by Read.
type Document struct {
	ID         string
	FileName   string
	FilePath   string
	Modified   string
	Text       string
	CharLength int
}

func fromSearchOutput(out domain.SearchOutput) Output {
	results := make([]Result, len(out.Results))
	for i, r := range out.Results {
		results[i] = Result{
			DocID:       r.DocID,
			Rank:        r.Rank,
			VectorScore: r.VectorScore,
			RerankScore: r.RerankScore,
			FusedScore:  r.FusedScore,
			FileName:    r.FileName,
			FilePath:    r.FilePath,
			Modified:    r.Modified,
			Preview:     r.Preview,
			CharLength:  r.CharLength,
		}
	}
	return Output{
		Results:       results,
		Reranked:      out.Reranked,
		VariantsTried: out.VariantsTried,
		Warnings:      out.Warnings,
	}
}

func fromDocument(doc domain.HydratedDocument) Document {
	return Document{
		ID:         doc.ID,
		FileName:   doc.FileName,
		FilePath:   doc.FilePath,
		Modified:   doc.Modified,
		Text:       doc.Text,
		CharLength: doc.CharLength(),
	}
}

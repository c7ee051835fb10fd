package chi

import (
	"github.com/kailas-cloud/drivesearch/internal/domain"
	healthuc "github.com/kailas-cloud/drivesearch/internal/usecase/health"
)

// Error codes returned in JSON error responses.
const (
	CodeBadRequest        = "bad_request"
	CodeInvalidQuery      = "invalid_query"
	CodeDocumentNotFound  = "document_not_found"
	CodeNotFound          = "not_found"
	CodeRetrievalFailed   = "retrieval_unavailable"
	CodeEmbeddingProvider = "embedding_provider_error"
	CodeRerankUnavailable = "rerank_unavailable"
	CodeInternalError     = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  *int   `json:"top_k,omitempty"`
}

// SearchResultItem is one ranked document in a search response.
type SearchResultItem struct {
	ID          string  `json:"id"`
	Rank        int     `json:"rank"`
	VectorScore float64 `json:"vector_score"`
	RerankScore float64 `json:"rerank_score"`
	FusedScore  float64 `json:"fused_score"`
	FileName    string  `json:"file_name,omitempty"`
	FilePath    string  `json:"file_path,omitempty"`
	Modified    string  `json:"modified,omitempty"`
	Preview     string  `json:"preview,omitempty"`
	CharLength  int     `json:"char_length"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Results       []SearchResultItem `json:"results"`
	Reranked      bool               `json:"reranked"`
	VariantsTried int                `json:"variants_tried"`
	Warnings      []string           `json:"warnings,omitempty"`
}

// DocumentResponse is the body of GET /v1/documents/{id}.
type DocumentResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name,omitempty"`
	FilePath   string `json:"file_path,omitempty"`
	Modified   string `json:"modified,omitempty"`
	Text       string `json:"text"`
	CharLength int    `json:"char_length"`
}

// SuggestRequest is the body of POST /v1/suggest.
type SuggestRequest struct {
	Query string `json:"query"`
}

// SuggestResponse carries alternative query phrasings.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchOutputToDTO(out domain.SearchOutput) SearchResponse {
	items := make([]SearchResultItem, len(out.Results))
	for i, r := range out.Results {
		items[i] = SearchResultItem{
			ID:          r.DocID,
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
	return SearchResponse{
		Results:       items,
		Reranked:      out.Reranked,
		VariantsTried: out.VariantsTried,
		Warnings:      out.Warnings,
	}
}

func documentToDTO(doc domain.HydratedDocument) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		FileName:   doc.FileName,
		FilePath:   doc.FilePath,
		Modified:   doc.Modified,
		Text:       doc.Text,
		CharLength: doc.CharLength(),
	}
}

func healthToDTO(report healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(report.Status), Checks: checks}
}

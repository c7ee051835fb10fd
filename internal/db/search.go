package db

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery is the input for BM25 keyword search.
type TextQuery struct {
	IndexName    string
	Terms        []string
	TopK         int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
// For KNN queries Score is a cosine similarity mapped into [0,1];
// for BM25 queries it is the raw, unbounded BM25 score.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

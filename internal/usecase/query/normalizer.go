package query

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/drivesearch/internal/domain"
)

// fillerPattern matches filler words and phrases that carry no semantic
// weight for retrieval. Longer alternatives come first so "search for" wins
// over "search".
var fillerPattern = regexp.MustCompile(
	`\b(?:search for|show me|give me|get me|look for|look up|can you|find|search)\b`,
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalize cleans a raw user query: lower-cases, strips filler, collapses
// whitespace. Returns domain.ErrInvalidQuery when nothing usable remains.
func Normalize(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.ErrInvalidQuery
	}

	q := strings.ToLower(raw)
	q = fillerPattern.ReplaceAllString(q, " ")
	q = whitespacePattern.ReplaceAllString(q, " ")
	q = strings.TrimSpace(q)

	// A query made of nothing but filler is as unusable as an empty one.
	if q == "" {
		return "", domain.ErrInvalidQuery
	}
	return q, nil
}

// stopwords excluded from the keywords variant and from sparse search terms.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {},
	"find": {}, "search": {}, "show": {}, "me": {}, "my": {},
}

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9-]*`)

// ContentTokens reduces a normalized query to its content-bearing tokens,
// preserving order. Stopwords are dropped.
func ContentTokens(normalized string) []string {
	raw := tokenPattern.FindAllString(normalized, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, ok := stopwords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

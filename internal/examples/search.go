package examples

import (
	"context"
	"errors"
	"fmt"
	"sync"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ziadkadry99/sketchpad/internal/embeddings"
)

const collectionName = "examples"

// ErrSearchDisabled reports a search attempt without a configured embedding
// provider.
var ErrSearchDisabled = errors.New("example search requires an embedding provider")

// SearchResult is one semantic search hit.
type SearchResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Similarity  float32 `json:"similarity"`
}

// searcher wraps a lazily built in-memory chromem index over the library.
// The index is built on the first search so that a server started without
// search traffic never spends embedding calls.
type searcher struct {
	mu       sync.Mutex
	embedder embeddings.Embedder
	col      *chromem.Collection
}

func newSearcher(embedder embeddings.Embedder) *searcher {
	return &searcher{embedder: embedder}
}

// Search returns the examples closest to query, best first. limit <= 0 means
// five results.
func (l *Library) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if l.searcher == nil {
		return nil, ErrSearchDisabled
	}

	col, err := l.searcher.ensureIndex(ctx, l.examples)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 5
	}
	// chromem rejects result counts above the collection size.
	if count := col.Count(); limit > count {
		limit = count
	}
	if limit == 0 {
		return nil, nil
	}

	results, err := col.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query example index: %w", err)
	}

	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Name:        r.ID,
			Description: r.Metadata["description"],
			Similarity:  r.Similarity,
		}
	}
	return out, nil
}

func (s *searcher) ensureIndex(ctx context.Context, examples []Example) (*chromem.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.col != nil {
		return s.col, nil
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, embeddings.ToChromemFunc(s.embedder))
	if err != nil {
		return nil, fmt.Errorf("create example index: %w", err)
	}

	docs := make([]chromem.Document, len(examples))
	for i, ex := range examples {
		docs[i] = chromem.Document{
			ID:       ex.Name,
			Content:  ex.Description + "\n" + ex.Code,
			Metadata: map[string]string{"description": ex.Description},
		}
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return nil, fmt.Errorf("index examples: %w", err)
	}

	s.col = col
	return col, nil
}

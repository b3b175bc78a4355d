package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/studymesh/studymesh/core"
)

// InMemoryStore is a naive process-local core.KnowledgeStore. Documents are
// held in an append-only slice and searched with keyword-overlap scoring:
// the score of a document is the fraction of query tokens appearing in its
// content. Suitable for tests and demos; swap for the pgvector store for
// production retrieval.
//
// Concurrency: protected by RWMutex. Concurrent Add and Search may
// interleave arbitrarily; there is no transaction boundary.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs []core.Document
}

// NewInMemoryStore creates an empty in-memory knowledge store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Add appends copies of the given documents to the store.
func (s *InMemoryStore) Add(_ context.Context, docs []core.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		md := make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			md[k] = v
		}
		s.docs = append(s.docs, core.Document{Content: d.Content, Metadata: md})
	}
	return nil
}

// Search returns up to k documents ranked by keyword overlap with the
// query, highest score first. Documents sharing no token with the query are
// omitted. Never returns nil.
func (s *InMemoryStore) Search(_ context.Context, query string, k int) ([]core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := tokenize(query)
	results := make([]core.Document, 0, k)
	for _, d := range s.docs {
		score := overlapScore(tokens, d.Content)
		if score <= 0 {
			continue
		}
		md := make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			md[k] = v
		}
		results = append(results, core.Document{Content: d.Content, Metadata: md, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the number of stored documents.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

// tokenize lower-cases and splits on non-letter/non-digit runes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// overlapScore is the fraction of query tokens present in the content.
func overlapScore(queryTokens []string, content string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}
	contentTokens := tokenize(content)
	present := make(map[string]bool, len(contentTokens))
	for _, t := range contentTokens {
		present[t] = true
	}
	hits := 0
	for _, t := range queryTokens {
		if present[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(queryTokens))
}

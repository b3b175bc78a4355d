package core

import "context"

// KnowledgeStore defines similarity retrieval and ingestion over the
// document knowledge base. Implementations can back Search with embeddings,
// keywords or any heuristic. The store is the one piece of long-lived shared
// state in the system; implementations must be safe for concurrent reads.
// Writes are not required to be atomic or isolated from concurrent reads.
type KnowledgeStore interface {
	// Search returns up to k documents ranked by relevance. An empty result
	// is a valid, non-error outcome.
	Search(ctx context.Context, query string, k int) ([]Document, error)
	// Add ingests documents into the store.
	Add(ctx context.Context, docs []Document) error
	// Count reports the number of stored documents.
	Count(ctx context.Context) (int, error)
}

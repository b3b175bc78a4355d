// Package store provides knowledge store implementations and document
// ingestion helpers.
//
// InMemoryStore is a process-local store with keyword-overlap scoring,
// suitable for tests, examples and small corpora. The pgvector subpackage
// provides the production store backed by PostgreSQL with embedding-based
// similarity search.
package store

// Package pgvector implements a core.KnowledgeStore backed by PostgreSQL
// with the pgvector extension. Similarity search embeds the query and ranks
// documents by cosine distance.
package pgvector

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"golang.org/x/sync/errgroup"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/embedding"
	"github.com/studymesh/studymesh/logging"
)

const (
	defaultTable      = "documents"
	defaultDimensions = 1536
	// maxConcurrentEmbeds bounds parallel embedding calls during Add.
	maxConcurrentEmbeds = 4
)

// Options configures the store.
type Options struct {
	// Table is the table name. Defaults to "documents".
	Table string
	// Dimensions is the embedding vector size. Defaults to 1536, the size
	// produced by text-embedding-3-small.
	Dimensions int
	// Logger for debug output. Defaults to a no-op logger.
	Logger logging.Logger
}

// Store is a PostgreSQL + pgvector knowledge store. It is safe for
// concurrent use; the underlying pool serializes access, and concurrent
// Add and Search may interleave without a transaction boundary.
type Store struct {
	pool       *pgxpool.Pool
	embedder   embedding.Embedder
	table      string
	dimensions int
	logger     logging.Logger
}

// NewStore creates a store over the given pool and embedder.
func NewStore(pool *pgxpool.Pool, embedder embedding.Embedder, optFns ...func(o *Options)) *Store {
	opts := Options{
		Table:      defaultTable,
		Dimensions: defaultDimensions,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		pool:       pool,
		embedder:   embedder,
		table:      opts.Table,
		dimensions: opts.Dimensions,
		logger:     logging.OrNoOp(opts.Logger),
	}
}

// EnsureSchema creates the pgvector extension and the document table if
// they do not exist. Idempotent; call once at startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		"CREATE EXTENSION IF NOT EXISTS vector",
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}',
			embedding VECTOR(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.table, s.dimensions),
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Add embeds and inserts the given documents. Embeddings are generated
// concurrently with bounded parallelism; the whole batch fails if any
// embedding or insert fails.
func (s *Store) Add(ctx context.Context, docs []core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	vectors := make([]pgvector.Vector, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmbeds)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			vec, err := s.embedder.Embed(gctx, doc.Content)
			if err != nil {
				return fmt.Errorf("embed document %d: %w", i, err)
			}
			vectors[i] = pgvector.NewVector(vec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, doc := range docs {
		metadata, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata for document %d: %w", i, err)
		}
		query := fmt.Sprintf(
			"INSERT INTO %s (content, metadata, embedding) VALUES ($1, $2, $3)", s.table)
		if _, err := s.pool.Exec(ctx, query, doc.Content, metadata, vectors[i]); err != nil {
			return fmt.Errorf("insert document %d: %w", i, err)
		}
	}

	s.logger.Debug("documents added", "count", len(docs), "table", s.table)
	return nil
}

// Search embeds the query and returns up to k documents ranked by cosine
// similarity, highest first. Score is 1 minus the cosine distance.
func (s *Store) Search(ctx context.Context, query string, k int) ([]core.Document, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	stmt := fmt.Sprintf(`SELECT content, metadata, 1 - (embedding <=> $1) AS score
		FROM %s ORDER BY embedding <=> $1 LIMIT $2`, s.table)
	rows, err := s.pool.Query(ctx, stmt, pgvector.NewVector(vec), k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	docs := []core.Document{}
	for rows.Next() {
		var (
			content  string
			metadata []byte
			score    float64
		)
		if err := rows.Scan(&content, &metadata, &score); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		md := map[string]any{}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &md); err != nil {
				return nil, fmt.Errorf("decode metadata: %w", err)
			}
		}
		docs = append(docs, core.Document{Content: content, Metadata: md, Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	s.logger.Debug("vector search completed", "k", k, "found", len(docs))
	return docs, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	stmt := fmt.Sprintf("SELECT count(*) FROM %s", s.table)
	if err := s.pool.QueryRow(ctx, stmt).Scan(&count); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

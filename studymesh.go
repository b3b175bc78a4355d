// Package studymesh provides a high-level façade over the agent pipelines
// and the knowledge store, enabling rapid construction of retrieval-augmented
// study assistants. Most applications interact with this package by:
//  1. Creating an Assistant via New() (optionally overriding the default
//     in-memory store, generators and logger)
//  2. Ingesting documents (Ingest, IngestText, LoadSamples)
//  3. Asking questions or generating quizzes, tutorials and suggestions
//
// The façade delegates orchestration to the pipeline package while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a
// pgvector-backed store, real model providers and a structured logger.
package studymesh

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/pipeline"
	"github.com/studymesh/studymesh/provider"
	"github.com/studymesh/studymesh/store"
)

// Options configures the Assistant.
type Options struct {
	// Store holds the document knowledge base (defaults to an in-memory
	// store if not provided).
	Store core.KnowledgeStore

	// Generators are tried in order for every generation call; an error or
	// empty output advances to the next one. Defaults to a mock generator
	// suitable for local development.
	Generators []provider.Generator

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Assistant is the high-level façade aggregating the knowledge store and
// the pipeline layer.
type Assistant struct {
	store  core.KnowledgeStore
	chain  provider.Generator
	logger logging.Logger
}

// New creates a new Assistant with optional overrides. Any unset
// collaborator is initialized with a local default.
func New(optFns ...func(o *Options)) *Assistant {
	opts := Options{
		Store:  store.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	generators := opts.Generators
	if len(generators) == 0 {
		generators = []provider.Generator{provider.NewMockGenerator("default")}
	}

	return &Assistant{
		store:  opts.Store,
		chain:  provider.NewChain(generators, provider.WithLogger(opts.Logger)),
		logger: logging.OrNoOp(opts.Logger),
	}
}

func (a *Assistant) config() pipeline.Config {
	return pipeline.Config{Store: a.store, Generator: a.chain, Logger: a.logger}
}

// Ask runs the chat pipeline selected by mode (phase1, phase2, phase3,
// auto, meta; unrecognized modes resolve to auto) for the given query.
func (a *Assistant) Ask(ctx context.Context, query, mode string) (*pipeline.Result, error) {
	return pipeline.New(mode, a.config()).Process(ctx, query, pipeline.Options{})
}

// Quiz generates a multiple-choice question set about the query's topic.
func (a *Assistant) Quiz(ctx context.Context, query string, opts pipeline.Options) (*pipeline.Result, error) {
	return pipeline.NewQuiz(a.config()).Process(ctx, query, opts)
}

// Tutorial generates a structured tutorial about the query's topic.
func (a *Assistant) Tutorial(ctx context.Context, query string, opts pipeline.Options) (*pipeline.Result, error) {
	return pipeline.NewTutor(a.config()).Process(ctx, query, opts)
}

// Suggest generates categorized application ideas for the query's topic.
func (a *Assistant) Suggest(ctx context.Context, query string, opts pipeline.Options) (*pipeline.Result, error) {
	return pipeline.NewSuggestions(a.config()).Process(ctx, query, opts)
}

// Ingest adds documents to the knowledge base.
func (a *Assistant) Ingest(ctx context.Context, docs []core.Document) error {
	if err := a.store.Add(ctx, docs); err != nil {
		return fmt.Errorf("ingest documents: %w", err)
	}
	a.logger.Info("documents ingested", "count", len(docs))
	return nil
}

// IngestText chunks raw text into overlapping windows and adds the chunks
// to the knowledge base. Metadata is applied to every chunk, with the chunk
// index added under the "chunk" key.
func (a *Assistant) IngestText(ctx context.Context, text string, metadata map[string]any) (int, error) {
	chunks := store.SplitText(text, store.DefaultChunkSize, store.DefaultChunkOverlap)
	docs := make([]core.Document, 0, len(chunks))
	for i, chunk := range chunks {
		md := make(map[string]any, len(metadata)+1)
		for k, v := range metadata {
			md[k] = v
		}
		md["chunk"] = i
		docs = append(docs, core.Document{Content: chunk, Metadata: md})
	}
	if err := a.Ingest(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// LoadSamples adds the built-in sample corpus to the knowledge base and
// returns the number of documents loaded.
func (a *Assistant) LoadSamples(ctx context.Context) (int, error) {
	return store.LoadSamples(ctx, a.store)
}

// Count returns the number of documents in the knowledge base.
func (a *Assistant) Count(ctx context.Context) (int, error) {
	return a.store.Count(ctx)
}

// Status reports the health of the knowledge base.
type Status struct {
	// Overall is "healthy" or "warning".
	Overall       string
	DocumentCount int
	Issues        []string
}

// Status inspects the knowledge base and reports its document count along
// with any issues. An empty knowledge base is a warning, not an error.
func (a *Assistant) Status(ctx context.Context) (*Status, error) {
	count, err := a.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("knowledge base status: %w", err)
	}
	status := &Status{Overall: "healthy", DocumentCount: count, Issues: []string{}}
	if count == 0 {
		status.Overall = "warning"
		status.Issues = append(status.Issues, "Knowledge base is empty - consider loading sample documents")
	}
	return status, nil
}

// CheckAnswer validates a selected quiz option against the question.
func (a *Assistant) CheckAnswer(question core.QuizQuestion, selected int) core.AnswerCheck {
	return question.Check(selected)
}

// SuggestedTopics returns a fixed list of quiz topics with difficulty and
// question-count estimates.
func (a *Assistant) SuggestedTopics() []core.QuizTopic {
	return []core.QuizTopic{
		{Name: "Artificial Intelligence", Description: "Fundamentals of AI and machine learning", Difficulty: core.DifficultyMedium, EstimatedQuestions: 10},
		{Name: "Machine Learning", Description: "Core concepts and algorithms", Difficulty: core.DifficultyMedium, EstimatedQuestions: 8},
		{Name: "Natural Language Processing", Description: "Text processing and language understanding", Difficulty: core.DifficultyHard, EstimatedQuestions: 6},
		{Name: "Vector Databases", Description: "Storage and retrieval of high-dimensional data", Difficulty: core.DifficultyHard, EstimatedQuestions: 5},
		{Name: "RAG Architecture", Description: "Retrieval-Augmented Generation systems", Difficulty: core.DifficultyHard, EstimatedQuestions: 7},
	}
}

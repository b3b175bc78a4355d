// Package pipeline composes agents into named retrieval/generation
// strategies with different quality and latency tradeoffs.
//
// Every pipeline follows the same convention: agents run strictly in
// sequence, their thinking steps are concatenated in call order into one
// audit log, and the retrieved documents used for generation are returned
// as sources. Pipelines inherit the agents' degradation behavior and do
// not fail on provider or store errors.
package pipeline

import (
	"context"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

// Options is the mode-specific options bag accepted by every pipeline.
// Unrecognized combinations are ignored by pipelines that do not use them.
type Options struct {
	// Topic overrides the processed query as the subject for quiz, tutor
	// and suggestions generation.
	Topic string

	// Difficulty is easy, medium or hard. Defaults to medium.
	Difficulty string

	// QuestionCount is the number of quiz questions. Defaults to 5.
	QuestionCount int

	// UserLevel is beginner, intermediate or advanced. Defaults to
	// intermediate.
	UserLevel string

	// LearningStyle is a free-form label. Defaults to reading.
	LearningStyle string

	// DocumentCount is the retrieval width; each pipeline applies its own
	// default when non-positive.
	DocumentCount int

	// Creativity is a free-form label recorded in metadata. It does not
	// alter generation temperature. Defaults to balanced.
	Creativity string

	// UseContext gates retrieval for the suggestions pipeline even when
	// the query heuristically warrants it. Nil means true.
	UseContext *bool
}

func (o Options) useContext() bool {
	return o.UseContext == nil || *o.UseContext
}

// Result is the outcome of a pipeline run. The populated payload field
// depends on the pipeline: Answer for the chat pipelines, Questions for
// quiz, Sections for tutor, Suggestions for suggestions. ThinkingSteps,
// Sources and PipelineInfo are always set.
type Result struct {
	Answer        string
	Questions     []core.QuizQuestion
	Sections      []core.TutorSection
	Suggestions   *core.SuggestionSet
	ThinkingSteps []core.ThinkingStep
	Sources       []core.Document
	PipelineInfo  string
	Metadata      map[string]any
}

// Pipeline is an ordered composition of agents implementing one
// retrieval/generation strategy.
type Pipeline interface {
	// Name returns the human-readable pipeline identity.
	Name() string

	// Process runs the pipeline for the given query.
	Process(ctx context.Context, query string, opts Options) (*Result, error)
}

// Config carries the shared collaborators a pipeline wires its agents to.
type Config struct {
	Store     core.KnowledgeStore
	Generator provider.Generator
	Logger    logging.Logger
}

func (c Config) logger() logging.Logger {
	return logging.OrNoOp(c.Logger)
}

// Pipeline mode names accepted by New.
const (
	ModeSimple      = "phase1"
	ModeSmart       = "phase2"
	ModeSelfRefine  = "phase3"
	ModeAdaptive    = "auto"
	ModeMeta        = "meta"
	ModeQuiz        = "quiz"
	ModeTutor       = "tutor"
	ModeSuggestions = "suggestions"
)

// New maps a mode string to a fresh pipeline instance. The mapping is
// stateless; instances share no mutable state. Unrecognized modes resolve
// to the adaptive pipeline.
func New(mode string, cfg Config) Pipeline {
	switch mode {
	case ModeSimple:
		return NewSimple(cfg)
	case ModeSmart:
		return NewSmart(cfg)
	case ModeSelfRefine:
		return NewSelfRefine(cfg)
	case ModeAdaptive, ModeMeta:
		return NewAdaptive(cfg)
	case ModeQuiz:
		return NewQuiz(cfg)
	case ModeTutor:
		return NewTutor(cfg)
	case ModeSuggestions:
		return NewSuggestions(cfg)
	default:
		return NewAdaptive(cfg)
	}
}

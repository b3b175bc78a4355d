package pipeline

import (
	"context"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// Simple is the lowest-latency strategy: query analysis, conditional
// retrieval with k=3, then a single answer generation pass with no quality
// loop.
type Simple struct {
	name string
	cfg  Config
}

// NewSimple constructs the simple pipeline.
func NewSimple(cfg Config) *Simple {
	return &Simple{name: "Phase 1: Basic A2A", cfg: cfg}
}

// Name implements Pipeline.
func (p *Simple) Name() string { return p.name }

// Process implements Pipeline.
func (p *Simple) Process(ctx context.Context, query string, _ Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	documents := []core.Document{}
	if q.Query.NeedsRetrieval {
		r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
			Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: 3})
		steps = append(steps, r.ThinkingSteps...)
		documents = r.Documents
	}

	a := agent.NewAnswerAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.AnswerInput{Query: q.Query.Processed, Documents: documents})
	steps = append(steps, a.ThinkingSteps...)

	logging.LogPipelineRun(p.cfg.logger(), p.name, len(steps), time.Since(start))
	return &Result{
		Answer:        a.Answer,
		ThinkingSteps: steps,
		Sources:       documents,
		PipelineInfo:  p.name,
	}, nil
}

package pipeline

import (
	"context"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// refineThreshold is the critic score below which the smart pipeline runs
// a single refinement pass.
const refineThreshold = 7

// Smart extends the simple strategy with a critic stage and one conditional
// refinement pass. Retrieval width is k=5.
type Smart struct {
	name string
	cfg  Config
}

// NewSmart constructs the smart pipeline.
func NewSmart(cfg Config) *Smart {
	return &Smart{name: "Phase 2: Smart A2A", cfg: cfg}
}

// Name implements Pipeline.
func (p *Smart) Name() string { return p.name }

// Process implements Pipeline.
func (p *Smart) Process(ctx context.Context, query string, _ Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	documents := []core.Document{}
	if q.Query.NeedsRetrieval {
		r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
			Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: 5})
		steps = append(steps, r.ThinkingSteps...)
		documents = r.Documents
	}

	a := agent.NewAnswerAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.AnswerInput{Query: q.Query.Processed, Documents: documents})
	steps = append(steps, a.ThinkingSteps...)
	answer := a.Answer

	c := agent.NewCriticAgent().Process(agent.CriticInput{
		Query:     q.Query.Processed,
		Answer:    answer,
		Documents: documents,
	})
	steps = append(steps, c.ThinkingSteps...)

	if c.Score < refineThreshold {
		rf := agent.NewRefineAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
			Process(ctx, agent.RefineInput{
				Query:     q.Query.Processed,
				Answer:    answer,
				Critique:  c.Critique,
				Documents: documents,
			})
		steps = append(steps, rf.ThinkingSteps...)
		answer = rf.RefinedAnswer
	}

	logging.LogPipelineRun(p.cfg.logger(), p.name, len(steps), time.Since(start))
	return &Result{
		Answer:        answer,
		ThinkingSteps: steps,
		Sources:       documents,
		PipelineInfo:  p.name,
	}, nil
}

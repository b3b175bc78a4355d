package pipeline

import (
	"context"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

const (
	// acceptThreshold is the critic score at which iteration stops.
	acceptThreshold = 8
	// maxRefinements caps the critic/refine loop so it terminates
	// regardless of critic behavior.
	maxRefinements = 3
)

// SelfRefine is the highest-quality strategy: after answer generation it
// loops critique and refinement until the score reaches the acceptance
// threshold or three refinements have been performed, whichever comes
// first. Retrieval width is k=7.
type SelfRefine struct {
	name string
	cfg  Config
}

// NewSelfRefine constructs the self-refinement pipeline.
func NewSelfRefine(cfg Config) *SelfRefine {
	return &SelfRefine{name: "Phase 3: Self-Refinement", cfg: cfg}
}

// Name implements Pipeline.
func (p *SelfRefine) Name() string { return p.name }

// Process implements Pipeline.
func (p *SelfRefine) Process(ctx context.Context, query string, _ Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	documents := []core.Document{}
	if q.Query.NeedsRetrieval {
		r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
			Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: 7})
		steps = append(steps, r.ThinkingSteps...)
		documents = r.Documents
	}

	a := agent.NewAnswerAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.AnswerInput{Query: q.Query.Processed, Documents: documents})
	steps = append(steps, a.ThinkingSteps...)
	answer := a.Answer

	critic := agent.NewCriticAgent()
	refiner := agent.NewRefineAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger))

	for iter := 0; iter < maxRefinements; iter++ {
		c := critic.Process(agent.CriticInput{
			Query:     q.Query.Processed,
			Answer:    answer,
			Documents: documents,
		})
		steps = append(steps, c.ThinkingSteps...)
		if c.Score >= acceptThreshold {
			break
		}

		rf := refiner.Process(ctx, agent.RefineInput{
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

package pipeline

import (
	"context"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// Suggestions generates categorized idea lists for a topic. Retrieval runs
// only when the query heuristically warrants it and the caller has not
// opted out of context; width defaults to k=5.
type Suggestions struct {
	name string
	cfg  Config
}

// NewSuggestions constructs the suggestions pipeline.
func NewSuggestions(cfg Config) *Suggestions {
	return &Suggestions{name: "Suggestions Pipeline", cfg: cfg}
}

// Name implements Pipeline.
func (p *Suggestions) Name() string { return p.name }

// Process implements Pipeline.
func (p *Suggestions) Process(ctx context.Context, query string, opts Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	documents := []core.Document{}
	if q.Query.NeedsRetrieval && opts.useContext() {
		k := opts.DocumentCount
		if k <= 0 {
			k = 5
		}
		r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
			Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: k})
		steps = append(steps, r.ThinkingSteps...)
		documents = r.Documents
	}

	topic := opts.Topic
	if topic == "" {
		topic = q.Query.Processed
	}
	creativity := opts.Creativity
	if creativity == "" {
		creativity = "balanced"
	}

	out := agent.NewSuggestionsAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.SuggestionsInput{
			Topic:     topic,
			Query:     q.Query.Processed,
			Documents: documents,
		})
	steps = append(steps, out.ThinkingSteps...)

	logging.LogPipelineRun(p.cfg.logger(), p.name, len(steps), time.Since(start))
	return &Result{
		Suggestions:   &out.Suggestions,
		ThinkingSteps: steps,
		Sources:       documents,
		PipelineInfo:  p.name,
		Metadata: map[string]any{
			"topic":      topic,
			"creativity": creativity,
			"hasContext": len(documents) > 0,
		},
	}, nil
}

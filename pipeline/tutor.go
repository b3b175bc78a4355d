package pipeline

import (
	"context"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// Tutor retrieves context and generates a structured tutorial in one pass.
// Retrieval defaults to k=8.
type Tutor struct {
	name string
	cfg  Config
}

// NewTutor constructs the tutor pipeline.
func NewTutor(cfg Config) *Tutor {
	return &Tutor{name: "Tutoring Pipeline", cfg: cfg}
}

// Name implements Pipeline.
func (p *Tutor) Name() string { return p.name }

// Process implements Pipeline.
func (p *Tutor) Process(ctx context.Context, query string, opts Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	k := opts.DocumentCount
	if k <= 0 {
		k = 8
	}
	r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: k})
	steps = append(steps, r.ThinkingSteps...)

	topic := opts.Topic
	if topic == "" {
		topic = q.Query.Processed
	}
	userLevel := opts.UserLevel
	if userLevel == "" {
		userLevel = core.LevelIntermediate
	}
	learningStyle := opts.LearningStyle
	if learningStyle == "" {
		learningStyle = "reading"
	}

	out := agent.NewTutorAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.TutorInput{
			Topic:         topic,
			Documents:     r.Documents,
			UserLevel:     userLevel,
			LearningStyle: learningStyle,
		})
	steps = append(steps, out.ThinkingSteps...)

	logging.LogPipelineRun(p.cfg.logger(), p.name, len(steps), time.Since(start))
	return &Result{
		Sections:      out.Sections,
		ThinkingSteps: steps,
		Sources:       r.Documents,
		PipelineInfo:  p.name,
		Metadata: map[string]any{
			"topic":        topic,
			"userLevel":    userLevel,
			"sectionCount": len(out.Sections),
		},
	}, nil
}

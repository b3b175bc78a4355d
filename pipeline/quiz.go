package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/studymesh/studymesh/agent"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
)

// Quiz retrieves a wide document set, shuffles it, and hands it to the
// quiz agent. Shuffling avoids generating repetitive questions from
// document order bias. Retrieval defaults to k=15 for variety; returned
// sources are capped to the first 5 documents of the unshuffled retrieval
// result, independent of which documents generation actually used.
type Quiz struct {
	name string
	cfg  Config
}

// NewQuiz constructs the quiz pipeline.
func NewQuiz(cfg Config) *Quiz {
	return &Quiz{name: "Quiz Generation Pipeline", cfg: cfg}
}

// Name implements Pipeline.
func (p *Quiz) Name() string { return p.name }

// Process implements Pipeline.
func (p *Quiz) Process(ctx context.Context, query string, opts Options) (*Result, error) {
	start := time.Now()
	var steps []core.ThinkingStep

	q := agent.NewQueryAgent().Process(agent.QueryInput{Query: query})
	steps = append(steps, q.ThinkingSteps...)

	k := opts.DocumentCount
	if k <= 0 {
		k = 15
	}
	r := agent.NewRetrievalAgent(p.cfg.Store, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.RetrievalInput{Query: q.Query.Processed, K: k})
	steps = append(steps, r.ThinkingSteps...)

	shuffled := make([]core.Document, len(r.Documents))
	copy(shuffled, r.Documents)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	p.cfg.logger().Debug("shuffled documents for quiz variety", "count", len(shuffled))

	topic := opts.Topic
	if topic == "" {
		topic = q.Query.Processed
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = core.DifficultyMedium
	}
	count := opts.QuestionCount
	if count <= 0 {
		count = 5
	}

	out := agent.NewQuizAgent(p.cfg.Generator, agent.WithLogger(p.cfg.Logger)).
		Process(ctx, agent.QuizInput{
			Topic:         topic,
			Documents:     shuffled,
			Difficulty:    difficulty,
			QuestionCount: count,
		})
	steps = append(steps, out.ThinkingSteps...)

	sources := r.Documents
	if len(sources) > 5 {
		sources = sources[:5]
	}

	logging.LogPipelineRun(p.cfg.logger(), p.name, len(steps), time.Since(start))
	return &Result{
		Questions:     out.Questions,
		ThinkingSteps: steps,
		Sources:       sources,
		PipelineInfo:  p.name,
		Metadata: map[string]any{
			"topic":         topic,
			"difficulty":    difficulty,
			"questionCount": len(out.Questions),
		},
	}, nil
}

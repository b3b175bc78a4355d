package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/internal/jsonx"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

const quizPromptTemplate = `Based on the following context about "%s", generate exactly %d DIVERSE multiple choice questions with difficulty level: %s.

IMPORTANT: Each question MUST focus on DIFFERENT aspects or concepts from the context. Use information from different documents. DO NOT repeat similar questions or test the same concept multiple times.

For each question, provide:
1. A clear, unique question testing a different concept
2. 4 multiple choice options (A, B, C, D)
3. The correct answer (0, 1, 2, or 3 for A, B, C, or D)
4. A brief explanation of why the answer is correct
5. Vary question types: factual, conceptual, application-based, etc.

Format as JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 1,
    "explanation": "Explanation here",
    "difficulty": "%s",
    "category": "%s"
  }
]

Context:
%s

Generate %d UNIQUE questions. JSON Response:`

// QuizInput is the input to QuizAgent.Process.
type QuizInput struct {
	Topic     string
	Documents []core.Document
	// Difficulty defaults to medium.
	Difficulty string
	// QuestionCount defaults to 5 when non-positive.
	QuestionCount int
}

// QuizOutput carries the generated question set. The set is always
// non-empty, exactly QuestionCount long, and every question satisfies the
// four-options/valid-index invariants, on the fallback path too.
type QuizOutput struct {
	Questions     []core.QuizQuestion
	ThinkingSteps []core.ThinkingStep
}

// QuizAgent generates multiple-choice questions from retrieved context.
// Generation uses a higher temperature than answering to encourage variety.
// A provider failure or unparseable response degrades to a deterministic
// templated question set; this agent never throws.
type QuizAgent struct {
	name        string
	gen         provider.Generator
	temperature float64
	logger      logging.Logger
}

// NewQuizAgent constructs a QuizAgent over the given generator.
func NewQuizAgent(gen provider.Generator, opts ...Option) *QuizAgent {
	cfg := newConfig(opts)
	return &QuizAgent{name: "QuizAgent", gen: gen, temperature: 0.8, logger: cfg.logger}
}

// Name implements Agent.
func (a *QuizAgent) Name() string { return a.name }

// Process generates the question set. Never returns an error.
func (a *QuizAgent) Process(ctx context.Context, in QuizInput) QuizOutput {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = core.DifficultyMedium
	}
	count := in.QuestionCount
	if count <= 0 {
		count = 5
	}

	questions, ok := a.generate(ctx, in.Topic, in.Documents, difficulty, count)
	var step core.ThinkingStep
	if ok {
		step = core.NewCompletedStep(a.name, "Quiz Generation",
			fmt.Sprintf("Generated %d diverse quiz questions", len(questions)))
	} else {
		questions = fallbackQuestions(in.Topic, in.Documents, difficulty, count)
		step = core.NewCompletedStep(a.name, "Quiz Generation",
			fmt.Sprintf("Generated %d fallback quiz questions", len(questions)))
	}

	return QuizOutput{Questions: questions, ThinkingSteps: []core.ThinkingStep{step}}
}

// generate runs the provider and post-processes its output. The boolean
// reports whether a usable question set was produced.
func (a *QuizAgent) generate(ctx context.Context, topic string, docs []core.Document, difficulty string, count int) ([]core.QuizQuestion, bool) {
	prompt := fmt.Sprintf(quizPromptTemplate,
		topic, count, difficulty, difficulty, topic, numberedContext(docs), count)

	text, err := a.gen.Generate(ctx, prompt, provider.GenerateOptions{Temperature: a.temperature})
	if err != nil {
		a.logger.Warn("quiz generation failed", "topic", topic, "error", err)
		return nil, false
	}

	var parsed []core.QuizQuestion
	if err := jsonx.ExtractArray(text, &parsed); err != nil {
		a.logger.Warn("quiz response not parseable", "topic", topic, "error", err)
		return nil, false
	}

	now := time.Now().UnixMilli()
	questions := make([]core.QuizQuestion, 0, count)
	for idx, q := range parsed {
		if len(questions) == count {
			break
		}
		if len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			a.logger.Debug("discarding malformed quiz question", "index", idx)
			continue
		}
		q.ID = fmt.Sprintf("quiz_%d_%d_%s", now, idx, shortSuffix())
		q.Source = roundRobinSource(docs, idx)
		if q.Difficulty == "" {
			q.Difficulty = difficulty
		}
		if q.Category == "" {
			q.Category = topic
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, false
	}
	// pad to the requested count with templated questions
	for i := len(questions); i < count; i++ {
		questions = append(questions, templatedQuestion(topic, docs, difficulty, i))
	}
	return questions, true
}

// fallbackQuestions produces the deterministic templated set used when every
// generation attempt fails. All questions carry correctAnswer 0.
func fallbackQuestions(topic string, docs []core.Document, difficulty string, count int) []core.QuizQuestion {
	questions := make([]core.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, templatedQuestion(topic, docs, difficulty, i))
	}
	return questions
}

func templatedQuestion(topic string, docs []core.Document, difficulty string, i int) core.QuizQuestion {
	source := "Generated content"
	if len(docs) > 0 {
		if s := docs[0].Source(); s != "" {
			source = s
		}
	}
	return core.QuizQuestion{
		ID:       fmt.Sprintf("fallback_%d_%d", time.Now().UnixMilli(), i),
		Question: fmt.Sprintf("What is an important concept related to %s?", topic),
		Options: []string{
			"This is a concept from the provided context",
			"This is not relevant to the topic",
			"This is incorrect information",
			"This is not mentioned in the context",
		},
		CorrectAnswer: 0,
		Explanation: fmt.Sprintf(
			"Based on the provided context about %s, the first option represents concepts discussed in the source material.", topic),
		Difficulty: difficulty,
		Category:   topic,
		Source:     source,
	}
}

// numberedContext joins document contents labeled by position so the model
// can spread questions across documents.
func numberedContext(docs []core.Document) string {
	parts := make([]string, 0, len(docs))
	for i, d := range docs {
		parts = append(parts, fmt.Sprintf("[Document %d]\n%s", i+1, d.Content))
	}
	return strings.Join(parts, "\n\n")
}

// roundRobinSource attributes provenance by cycling through the supplied
// documents in order.
func roundRobinSource(docs []core.Document, idx int) string {
	if len(docs) == 0 {
		return "Generated from context"
	}
	if s := docs[idx%len(docs)].Source(); s != "" {
		return s
	}
	return "Generated from context"
}

// shortSuffix yields a short random id fragment.
func shortSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

package agent

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

// Apology is the fixed answer returned when every generation attempt fails.
const Apology = "I apologize, but I'm unable to generate a response at the moment. Please try again later."

const answerPromptTemplate = `Based on the following context, please answer the question. If the context doesn't contain enough information to answer the question, please say so.

Context:
%s

Question: %s

Answer:`

// AnswerInput is the input to AnswerAgent.Process.
type AnswerInput struct {
	Query     string
	Documents []core.Document
}

// AnswerOutput carries the generated answer.
type AnswerOutput struct {
	Answer        string
	ThinkingSteps []core.ThinkingStep
}

// AnswerAgent generates an answer grounded in the supplied documents. The
// generator is expected to be a provider.Chain so primary/secondary fallback
// happens below this agent; if the whole chain fails the agent answers with
// the fixed apology instead of erroring. Always emits exactly two steps,
// processing then completed, even when the content signals degraded quality.
type AnswerAgent struct {
	name        string
	gen         provider.Generator
	temperature float64
	logger      logging.Logger
}

// NewAnswerAgent constructs an AnswerAgent over the given generator.
func NewAnswerAgent(gen provider.Generator, opts ...Option) *AnswerAgent {
	cfg := newConfig(opts)
	return &AnswerAgent{name: "AnswerAgent", gen: gen, temperature: 0.7, logger: cfg.logger}
}

// Name implements Agent.
func (a *AnswerAgent) Name() string { return a.name }

// Process generates the answer. Never returns an error.
func (a *AnswerAgent) Process(ctx context.Context, in AnswerInput) AnswerOutput {
	steps := []core.ThinkingStep{
		core.NewProcessingStep(a.name, "Response Generation", "Generating response using retrieved context..."),
	}

	prompt := fmt.Sprintf(answerPromptTemplate, core.JoinContents(in.Documents), in.Query)
	answer, err := a.gen.Generate(ctx, prompt, provider.GenerateOptions{Temperature: a.temperature})
	if err != nil {
		a.logger.Warn("answer generation failed, using apology", "error", err)
		answer = Apology
	}

	steps = append(steps, core.NewCompletedStep(a.name, "Response Generation", "Response generated successfully"))
	return AnswerOutput{Answer: answer, ThinkingSteps: steps}
}

package agent

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

const refinePromptTemplate = `Please refine the following answer based on the critique provided. Make it more comprehensive and accurate.

Original Query: %s
Original Answer: %s
Critique: %s
Supporting Documents: %s

Refined Answer:`

// RefineInput is the input to RefineAgent.Process.
type RefineInput struct {
	Query     string
	Answer    string
	Critique  string
	Documents []core.Document
}

// RefineOutput carries the refined answer. When every generation attempt
// fails, RefinedAnswer equals the original answer unchanged.
type RefineOutput struct {
	RefinedAnswer string
	ThinkingSteps []core.ThinkingStep
}

// RefineAgent asks the generator for an improved answer embedding the
// original answer, the critique and the same document context. Never throws;
// one completed step regardless of whether refinement improved anything.
type RefineAgent struct {
	name        string
	gen         provider.Generator
	temperature float64
	logger      logging.Logger
}

// NewRefineAgent constructs a RefineAgent over the given generator.
func NewRefineAgent(gen provider.Generator, opts ...Option) *RefineAgent {
	cfg := newConfig(opts)
	return &RefineAgent{name: "RefineAgent", gen: gen, temperature: 0.7, logger: cfg.logger}
}

// Name implements Agent.
func (a *RefineAgent) Name() string { return a.name }

// Process refines the answer. Never returns an error.
func (a *RefineAgent) Process(ctx context.Context, in RefineInput) RefineOutput {
	prompt := fmt.Sprintf(refinePromptTemplate, in.Query, in.Answer, in.Critique, core.JoinContents(in.Documents))

	refined, err := a.gen.Generate(ctx, prompt, provider.GenerateOptions{Temperature: a.temperature})
	if err != nil {
		a.logger.Warn("refinement generation failed, keeping original answer", "error", err)
		refined = in.Answer
	}

	step := core.NewCompletedStep(a.name, "Answer Refinement", "Answer refined successfully")
	return RefineOutput{RefinedAnswer: refined, ThinkingSteps: []core.ThinkingStep{step}}
}

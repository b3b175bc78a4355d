package agent

import (
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
)

// CriticInput is the input to CriticAgent.Process.
type CriticInput struct {
	Query     string
	Answer    string
	Documents []core.Document
}

// CriticOutput carries the critique and the heuristic quality score.
// The score is intentionally not clamped to 0..10: with the current rules
// its reachable range is 5..9, and it stays an open-ended quality signal
// rather than a strict bounded metric.
type CriticOutput struct {
	Critique      string
	Score         int
	ThinkingSteps []core.ThinkingStep
}

// comprehensiveAnswer is the critique text used when no defects are found.
const comprehensiveAnswer = "Answer appears comprehensive and well-supported"

// CriticAgent scores an answer with deterministic rules, no external call.
// Baseline 5; +1 for length over 100, +2 for at least one supporting
// document, +1 when the answer does not hedge.
type CriticAgent struct {
	name string
}

// NewCriticAgent constructs a CriticAgent.
func NewCriticAgent() *CriticAgent {
	return &CriticAgent{name: "CriticAgent"}
}

// Name implements Agent.
func (a *CriticAgent) Name() string { return a.name }

// Process evaluates the answer. Pure computation; always succeeds with a
// single completed step.
func (a *CriticAgent) Process(in CriticInput) CriticOutput {
	var critiques []string
	score := 5

	if len(in.Answer) < 50 {
		critiques = append(critiques, "Answer is too brief")
	}
	if strings.Contains(in.Answer, "I don't know") || strings.Contains(in.Answer, "I can't") {
		critiques = append(critiques, "Answer indicates uncertainty")
	}
	if len(in.Documents) == 0 {
		critiques = append(critiques, "No supporting documents found")
	}

	if len(in.Answer) > 100 {
		score++
	}
	if len(in.Documents) > 0 {
		score += 2
	}
	if in.Answer != "" && !strings.Contains(in.Answer, "I don't know") {
		score++
	}

	critique := comprehensiveAnswer
	if len(critiques) > 0 {
		critique = strings.Join(critiques, "; ")
	}

	step := core.NewCompletedStep(a.name, "Answer Evaluation",
		fmt.Sprintf("Answer evaluated with score: %d/10", score)).
		WithDetails(map[string]any{"critique": critique, "score": score})

	return CriticOutput{
		Critique:      critique,
		Score:         score,
		ThinkingSteps: []core.ThinkingStep{step},
	}
}

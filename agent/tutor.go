package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/internal/jsonx"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

const tutorPromptTemplate = `You are a patient, expert tutor. Create a short tutorial about "%s" using ONLY the information from the context below. DO NOT use any external knowledge - base everything strictly on the provided documents. If the context doesn't contain enough information, acknowledge this limitation. The tutorial should include 3-5 sections (mix of explanation, example, exercise, and a brief summary). Keep content concise but meaningful.

Context from retrieved documents:
%s

Return JSON array with objects: { id: string, title: string, content: string, type: 'explanation' | 'example' | 'exercise' | 'summary' }
Only output valid JSON array, nothing else.`

// TutorInput is the input to TutorAgent.Process.
type TutorInput struct {
	Topic         string
	Documents     []core.Document
	UserLevel     string
	LearningStyle string
}

// TutorOutput carries the generated tutorial sections.
type TutorOutput struct {
	Sections      []core.TutorSection
	ThinkingSteps []core.ThinkingStep
}

// TutorAgent generates a structured tutorial strictly grounded in the
// supplied documents. When every generation attempt fails it answers with
// a fixed four-section skeleton referencing the retrieved documents.
type TutorAgent struct {
	name        string
	gen         provider.Generator
	temperature float64
	logger      logging.Logger
}

// NewTutorAgent constructs a TutorAgent over the given generator.
func NewTutorAgent(gen provider.Generator, opts ...Option) *TutorAgent {
	cfg := newConfig(opts)
	return &TutorAgent{name: "TutorAgent", gen: gen, temperature: 0.6, logger: cfg.logger}
}

// Name implements Agent.
func (a *TutorAgent) Name() string { return a.name }

// Process generates the tutorial. Never returns an error.
func (a *TutorAgent) Process(ctx context.Context, in TutorInput) TutorOutput {
	steps := []core.ThinkingStep{
		core.NewProcessingStep(a.name, "Tutor Planning",
			fmt.Sprintf("Creating a structured tutorial for: %s", in.Topic)),
	}

	sections, ok := a.generate(ctx, in.Topic, in.Documents)
	if ok {
		steps = append(steps, core.NewCompletedStep(a.name, "Tutor Generation",
			fmt.Sprintf("Generated %d tutorial sections", len(sections))))
	} else {
		sections = fallbackSections(in.Topic, in.Documents)
		steps = append(steps, core.NewCompletedStep(a.name, "Tutor Generation",
			fmt.Sprintf("Generated %d fallback tutorial sections", len(sections))))
	}

	return TutorOutput{Sections: sections, ThinkingSteps: steps}
}

func (a *TutorAgent) generate(ctx context.Context, topic string, docs []core.Document) ([]core.TutorSection, bool) {
	prompt := fmt.Sprintf(tutorPromptTemplate, topic, bulletedContext(docs))

	text, err := a.gen.Generate(ctx, prompt, provider.GenerateOptions{Temperature: a.temperature})
	if err != nil {
		a.logger.Warn("tutorial generation failed", "topic", topic, "error", err)
		return nil, false
	}

	var sections []core.TutorSection
	if err := jsonx.ExtractArray(text, &sections); err != nil {
		a.logger.Warn("tutorial response not parseable", "topic", topic, "error", err)
		return nil, false
	}
	if len(sections) == 0 {
		return nil, false
	}
	return sections, true
}

// fallbackSections is the fixed skeleton used when every generation attempt
// fails. The first two sections cite the retrieved documents; the exercise
// and summary carry no sources.
func fallbackSections(topic string, docs []core.Document) []core.TutorSection {
	var firstDoc []core.Document
	if len(docs) > 0 {
		firstDoc = docs[:1]
	}
	return []core.TutorSection{
		{
			ID:      "intro",
			Title:   fmt.Sprintf("Overview of %s", topic),
			Content: fmt.Sprintf("This section introduces %s with key ideas based on retrieved sources.", topic),
			Type:    core.SectionExplanation,
			Sources: docs,
		},
		{
			ID:      "example",
			Title:   "Worked example",
			Content: "A small example illustrating the concept.",
			Type:    core.SectionExample,
			Sources: firstDoc,
		},
		{
			ID:      "practice",
			Title:   "Practice exercise",
			Content: "Try to summarize the concept in your own words.",
			Type:    core.SectionExercise,
			Sources: []core.Document{},
		},
		{
			ID:      "summary",
			Title:   "Summary",
			Content: fmt.Sprintf("Key takeaways about %s.", topic),
			Type:    core.SectionSummary,
			Sources: []core.Document{},
		},
	}
}

// bulletedContext renders document contents as a bullet list for the tutor
// prompt.
func bulletedContext(docs []core.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, "- "+d.Content)
	}
	return strings.Join(parts, "\n")
}

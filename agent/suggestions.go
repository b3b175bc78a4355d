package agent

import (
	"context"
	"fmt"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/internal/jsonx"
	"github.com/studymesh/studymesh/logging"
	"github.com/studymesh/studymesh/provider"
)

const suggestionsPromptTemplate = `Based on the topic "%s" and the following context, generate creative and practical suggestions organized into 3 categories:

1. Creative Applications - innovative ways to apply this knowledge
2. Learning & Education - educational applications and learning approaches
3. Business Solutions - practical business or professional applications

For each category, provide exactly 3 specific, actionable suggestions that are relevant to the topic.

%sReturn as a JSON object with this structure:
{
  "creativeApplications": ["suggestion1", "suggestion2", "suggestion3"],
  "learningEducation": ["suggestion1", "suggestion2", "suggestion3"],
  "businessSolutions": ["suggestion1", "suggestion2", "suggestion3"],
  "proTip": "A helpful tip about combining or applying these suggestions"
}

Only output valid JSON, nothing else.`

// SuggestionsInput is the input to SuggestionsAgent.Process.
type SuggestionsInput struct {
	Topic     string
	Query     string
	Documents []core.Document
}

// SuggestionsOutput carries the suggestion categories.
type SuggestionsOutput struct {
	Suggestions   core.SuggestionSet
	ThinkingSteps []core.ThinkingStep
}

// SuggestionsAgent generates three fixed categories of suggestions plus a
// closing tip. Any failure degrades to deterministic templates interpolating
// the topic; this agent never throws.
type SuggestionsAgent struct {
	name        string
	gen         provider.Generator
	temperature float64
	logger      logging.Logger
}

// NewSuggestionsAgent constructs a SuggestionsAgent over the given generator.
func NewSuggestionsAgent(gen provider.Generator, opts ...Option) *SuggestionsAgent {
	cfg := newConfig(opts)
	return &SuggestionsAgent{name: "SuggestionsAgent", gen: gen, temperature: 0.8, logger: cfg.logger}
}

// Name implements Agent.
func (a *SuggestionsAgent) Name() string { return a.name }

// Process generates the suggestion set. Never returns an error.
func (a *SuggestionsAgent) Process(ctx context.Context, in SuggestionsInput) SuggestionsOutput {
	topic := in.Topic
	if topic == "" {
		topic = in.Query
	}

	steps := []core.ThinkingStep{
		core.NewProcessingStep(a.name, "Suggestions Generation",
			fmt.Sprintf("Generating creative suggestions for: %s", topic)),
	}

	suggestions, ok := a.generate(ctx, topic, in.Documents)
	if ok {
		steps = append(steps, core.NewCompletedStep(a.name, "Suggestions Generation",
			"Generated suggestions for all categories"))
	} else {
		suggestions = fallbackSuggestions(topic)
		steps = append(steps, core.NewCompletedStep(a.name, "Suggestions Generation",
			"Generated fallback suggestions"))
	}

	return SuggestionsOutput{Suggestions: suggestions, ThinkingSteps: steps}
}

func (a *SuggestionsAgent) generate(ctx context.Context, topic string, docs []core.Document) (core.SuggestionSet, bool) {
	contextBlock := ""
	if len(docs) > 0 {
		contextBlock = fmt.Sprintf("Context:\n%s\n\n", core.JoinContents(docs))
	}
	prompt := fmt.Sprintf(suggestionsPromptTemplate, topic, contextBlock)

	text, err := a.gen.Generate(ctx, prompt, provider.GenerateOptions{Temperature: a.temperature})
	if err != nil {
		a.logger.Warn("suggestions generation failed", "topic", topic, "error", err)
		return core.SuggestionSet{}, false
	}

	var suggestions core.SuggestionSet
	if err := jsonx.ExtractObject(text, &suggestions); err != nil {
		a.logger.Warn("suggestions response not parseable", "topic", topic, "error", err)
		return core.SuggestionSet{}, false
	}
	if len(suggestions.CreativeApplications) != 3 ||
		len(suggestions.LearningEducation) != 3 ||
		len(suggestions.BusinessSolutions) != 3 {
		a.logger.Warn("suggestions response has wrong category sizes", "topic", topic)
		return core.SuggestionSet{}, false
	}
	return suggestions, true
}

// fallbackSuggestions interpolates the topic into fixed sentence patterns.
func fallbackSuggestions(topic string) core.SuggestionSet {
	return core.SuggestionSet{
		CreativeApplications: []string{
			fmt.Sprintf("Build an interactive %s visualization tool", topic),
			fmt.Sprintf("Create a %s-based creative writing assistant", topic),
			fmt.Sprintf("Develop a gamified %s learning experience", topic),
		},
		LearningEducation: []string{
			fmt.Sprintf("Design a %s study guide with practice questions", topic),
			fmt.Sprintf("Create flashcards for key %s concepts", topic),
			fmt.Sprintf("Build a %s tutorial series for beginners", topic),
		},
		BusinessSolutions: []string{
			fmt.Sprintf("Develop a %s analysis tool for professionals", topic),
			fmt.Sprintf("Create a %s consulting framework", topic),
			fmt.Sprintf("Build a %s knowledge base for teams", topic),
		},
		ProTip: "Combine elements from different categories to create unique solutions tailored to specific needs.",
	}
}

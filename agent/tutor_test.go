package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/provider"
)

func TestTutorAgentParsesProviderOutput(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(`[
		{"id": "s1", "title": "What is RAG", "content": "RAG combines retrieval with generation.", "type": "explanation"},
		{"id": "s2", "title": "Try it", "content": "Sketch a retrieval flow.", "type": "exercise"}
	]`)
	a := NewTutorAgent(gen)

	out := a.Process(context.Background(), TutorInput{Topic: "RAG", Documents: twoDocs()})
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "What is RAG", out.Sections[0].Title)
	assert.Equal(t, core.SectionExplanation, out.Sections[0].Type)
	assert.Equal(t, core.SectionExercise, out.Sections[1].Type)

	require.Len(t, out.ThinkingSteps, 2)
	assert.Equal(t, core.StepProcessing, out.ThinkingSteps[0].Status)
	assert.Equal(t, "Creating a structured tutorial for: RAG", out.ThinkingSteps[0].Message)
	assert.Equal(t, "Generated 2 tutorial sections", out.ThinkingSteps[1].Message)
}

func TestTutorAgentFallbackOnProviderFailure(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetError(errors.New("provider down"))
	a := NewTutorAgent(gen)

	docs := twoDocs()
	out := a.Process(context.Background(), TutorInput{Topic: "RAG", Documents: docs})
	require.Len(t, out.Sections, 4)

	assert.Equal(t, "intro", out.Sections[0].ID)
	assert.Equal(t, core.SectionExplanation, out.Sections[0].Type)
	assert.Len(t, out.Sections[0].Sources, 2)

	assert.Equal(t, "example", out.Sections[1].ID)
	assert.Equal(t, core.SectionExample, out.Sections[1].Type)
	assert.Len(t, out.Sections[1].Sources, 1)

	assert.Equal(t, "practice", out.Sections[2].ID)
	assert.Equal(t, core.SectionExercise, out.Sections[2].Type)
	assert.Empty(t, out.Sections[2].Sources)

	assert.Equal(t, "summary", out.Sections[3].ID)
	assert.Equal(t, core.SectionSummary, out.Sections[3].Type)
	assert.Empty(t, out.Sections[3].Sources)

	assert.Contains(t, out.Sections[0].Title, "RAG")
	assert.Equal(t, "Generated 4 fallback tutorial sections", out.ThinkingSteps[1].Message)
}

func TestTutorAgentFallbackOnUnparseableOutput(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply("Sorry, no JSON from me.")
	a := NewTutorAgent(gen)

	out := a.Process(context.Background(), TutorInput{Topic: "RAG"})
	require.Len(t, out.Sections, 4)
	assert.Empty(t, out.Sections[1].Sources)
}

func TestTutorAgentFallbackOnEmptyArray(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply("[]")
	a := NewTutorAgent(gen)

	out := a.Process(context.Background(), TutorInput{Topic: "RAG"})
	require.Len(t, out.Sections, 4)
}

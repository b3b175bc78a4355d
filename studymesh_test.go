package studymesh

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/pipeline"
	"github.com/studymesh/studymesh/provider"
)

func TestAssistantDefaultsAreUsable(t *testing.T) {
	a := New()
	ctx := context.Background()

	n, err := a.LoadSamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	res, err := a.Ask(ctx, "What is RAG and why does it matter?", "phase2")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Answer)
	assert.Equal(t, "Phase 2: Smart A2A", res.PipelineInfo)
	assert.NotEmpty(t, res.Sources)
}

func TestAssistantAskUnknownModeFallsBackToAdaptive(t *testing.T) {
	a := New()
	res, err := a.Ask(context.Background(), "hello there", "bogus")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.PipelineInfo, "AUTO: AI Selects Optimal → "))
}

func TestAssistantIngestTextChunksInput(t *testing.T) {
	a := New()
	ctx := context.Background()

	text := strings.Repeat("retrieval ", 300) // ~3000 chars
	n, err := a.IngestText(ctx, text, map[string]any{"source": "notes"})
	require.NoError(t, err)
	assert.Greater(t, n, 1)

	count, err := a.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)
}

func TestAssistantStatus(t *testing.T) {
	a := New()
	ctx := context.Background()

	st, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "warning", st.Overall)
	assert.Zero(t, st.DocumentCount)
	require.Len(t, st.Issues, 1)

	_, err = a.LoadSamples(ctx)
	require.NoError(t, err)

	st, err = a.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", st.Overall)
	assert.Equal(t, 5, st.DocumentCount)
	assert.Empty(t, st.Issues)
}

func TestAssistantQuizAndTutorial(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply("not json") // degrade to deterministic fallbacks
	a := New(func(o *Options) {
		o.Generators = []provider.Generator{gen}
	})
	ctx := context.Background()
	_, err := a.LoadSamples(ctx)
	require.NoError(t, err)

	quiz, err := a.Quiz(ctx, "Quiz me on machine learning", pipeline.Options{QuestionCount: 3})
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 3)

	tut, err := a.Tutorial(ctx, "Teach me about vector databases", pipeline.Options{})
	require.NoError(t, err)
	assert.Len(t, tut.Sections, 4)
}

func TestAssistantCheckAnswer(t *testing.T) {
	a := New()
	q := core.QuizQuestion{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Explanation: "because"}

	check := a.CheckAnswer(q, 2)
	assert.True(t, check.IsCorrect)
	assert.Equal(t, "Excellent! You got it right!", check.Feedback)

	check = a.CheckAnswer(q, 0)
	assert.False(t, check.IsCorrect)
	assert.Equal(t, "Not quite right, but keep learning!", check.Feedback)
}

func TestAssistantSuggestedTopics(t *testing.T) {
	topics := New().SuggestedTopics()
	require.Len(t, topics, 5)
	assert.Equal(t, "Artificial Intelligence", topics[0].Name)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Description)
		assert.Positive(t, topic.EstimatedQuestions)
	}
}

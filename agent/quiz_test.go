package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymesh/studymesh/core"
	"github.com/studymesh/studymesh/provider"
)

const quizJSON = `Here you go:
[
  {"question": "What does RAG stand for?", "options": ["Retrieval-Augmented Generation", "Random Access Graph", "Recursive Agent Group", "Ranked Answer Grid"], "correctAnswer": 0, "explanation": "RAG retrieves before generating.", "difficulty": "medium", "category": "RAG"},
  {"question": "What does a vector store index?", "options": ["Images", "Embeddings", "Tables", "Logs"], "correctAnswer": 1, "explanation": "Vector stores index embeddings.", "difficulty": "medium", "category": "RAG"}
]`

func assertWellFormed(t *testing.T, questions []core.QuizQuestion, count int) {
	t.Helper()
	require.Len(t, questions, count)
	seen := map[string]bool{}
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, 4)
		assert.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestQuizAgentParsesProviderOutput(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(quizJSON)
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", Documents: twoDocs(), QuestionCount: 2})
	assertWellFormed(t, out.Questions, 2)
	assert.Equal(t, "What does RAG stand for?", out.Questions[0].Question)

	// round-robin source attribution
	assert.Equal(t, "RAG Architecture", out.Questions[0].Source)
	assert.Equal(t, "Vector Databases", out.Questions[1].Source)
}

func TestQuizAgentPadsToRequestedCount(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(quizJSON) // only 2 questions
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", Documents: twoDocs(), QuestionCount: 5})
	assertWellFormed(t, out.Questions, 5)
}

func TestQuizAgentTruncatesToRequestedCount(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(quizJSON)
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", Documents: twoDocs(), QuestionCount: 1})
	assertWellFormed(t, out.Questions, 1)
}

func TestQuizAgentFallbackOnProviderFailure(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetError(errors.New("provider down"))
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", QuestionCount: 5})
	assertWellFormed(t, out.Questions, 5)
	for _, q := range out.Questions {
		assert.Equal(t, 0, q.CorrectAnswer)
		assert.Contains(t, q.Question, "RAG")
	}
}

func TestQuizAgentFallbackOnGarbageOutput(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply("I cannot produce JSON today.")
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", QuestionCount: 3})
	assertWellFormed(t, out.Questions, 3)
}

func TestQuizAgentDiscardsMalformedQuestions(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(`[{"question": "bad", "options": ["only", "three", "options"], "correctAnswer": 0},
		{"question": "also bad", "options": ["a", "b", "c", "d"], "correctAnswer": 7},
		{"question": "good", "options": ["a", "b", "c", "d"], "correctAnswer": 3, "explanation": "x"}]`)
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "RAG", QuestionCount: 2})
	assertWellFormed(t, out.Questions, 2)
	assert.Equal(t, "good", out.Questions[0].Question)
}

func TestQuizAgentDefaults(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetError(errors.New("down"))
	a := NewQuizAgent(gen)

	out := a.Process(context.Background(), QuizInput{Topic: "AI"})
	assertWellFormed(t, out.Questions, 5)
	assert.Equal(t, core.DifficultyMedium, out.Questions[0].Difficulty)
}

func TestQuizAgentStepMessages(t *testing.T) {
	gen := provider.NewMockGenerator("m")
	gen.SetReply(quizJSON)
	a := NewQuizAgent(gen)
	out := a.Process(context.Background(), QuizInput{Topic: "RAG", QuestionCount: 2})
	require.Len(t, out.ThinkingSteps, 1)
	assert.Equal(t, "Generated 2 diverse quiz questions", out.ThinkingSteps[0].Message)

	gen.SetError(fmt.Errorf("down"))
	out = a.Process(context.Background(), QuizInput{Topic: "RAG", QuestionCount: 2})
	require.Len(t, out.ThinkingSteps, 1)
	assert.Equal(t, "Generated 2 fallback quiz questions", out.ThinkingSteps[0].Message)
}

package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymesh/studymesh/provider"
)

func TestQuizDefaultsAndSourceCap(t *testing.T) {
	store := &stubStore{docs: docFixtures(8)}
	gen := provider.NewMockGenerator("m")
	gen.SetReply("no json here") // forces the templated question set

	res, err := NewQuiz(testConfig(store, gen)).Process(context.Background(), "Test me on RAG", Options{})
	require.NoError(t, err)

	assert.Equal(t, 15, store.lastK)
	assert.Equal(t, "Quiz Generation Pipeline", res.PipelineInfo)
	require.Len(t, res.Questions, 5)
	for _, q := range res.Questions {
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, 4)
	}

	// sources are the first five retrieved documents in retrieval order,
	// regardless of the shuffle applied before generation
	require.Len(t, res.Sources, 5)
	for i, src := range res.Sources {
		assert.Equal(t, store.docs[i].Source(), src.Source())
	}

	assert.Equal(t, "Test me on RAG", res.Metadata["topic"])
	assert.Equal(t, "medium", res.Metadata["difficulty"])
	assert.Equal(t, 5, res.Metadata["questionCount"])
}

func TestQuizHonorsOptions(t *testing.T) {
	store := &stubStore{docs: docFixtures(3)}
	gen := provider.NewMockGenerator("m")
	gen.SetReply("still no json")

	res, err := NewQuiz(testConfig(store, gen)).Process(context.Background(), "quiz", Options{
		Topic:         "vector search",
		Difficulty:    "hard",
		QuestionCount: 2,
		DocumentCount: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, store.lastK)
	assert.Len(t, res.Questions, 2)
	assert.Equal(t, "vector search", res.Metadata["topic"])
	assert.Equal(t, "hard", res.Metadata["difficulty"])
	assert.Len(t, res.Sources, 3)
}

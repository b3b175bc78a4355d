package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymesh/studymesh/provider"
)

func TestSimpleRetrievesThreeDocuments(t *testing.T) {
	store := &stubStore{docs: docFixtures(2)}
	gen := provider.NewMockGenerator("m")
	gen.SetReply("RAG grounds answers in retrieved documents.")

	res, err := NewSimple(testConfig(store, gen)).Process(context.Background(), "What is RAG?", Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, store.lastK)
	assert.Equal(t, "RAG grounds answers in retrieved documents.", res.Answer)
	assert.Equal(t, "Phase 1: Basic A2A", res.PipelineInfo)
	assert.Len(t, res.Sources, 2)

	counts := stepsByAgent(res.ThinkingSteps)
	assert.Equal(t, 1, counts["QueryAgent"])
	assert.Equal(t, 2, counts["RetrievalAgent"])
	assert.Equal(t, 2, counts["AnswerAgent"])
}

func TestSimpleSkipsRetrievalForTrivialQuery(t *testing.T) {
	store := &stubStore{docs: docFixtures(2)}
	gen := provider.NewMockGenerator("m")

	res, err := NewSimple(testConfig(store, gen)).Process(context.Background(), "hi", Options{})
	require.NoError(t, err)

	assert.Zero(t, store.searches)
	assert.Empty(t, res.Sources)
	assert.NotEmpty(t, res.Answer)
}

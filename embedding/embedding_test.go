package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedderDeterministic(t *testing.T) {
	e := &MockEmbedder{}
	ctx := context.Background()

	a, err := e.Embed(ctx, "retrieval augmented generation")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "retrieval augmented generation")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestMockEmbedderDimensions(t *testing.T) {
	e := &MockEmbedder{Dimensions: 8}
	vec, err := e.Embed(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Len(t, vec, 8)
}

func TestMockEmbedderNormalized(t *testing.T) {
	e := &MockEmbedder{Dimensions: 16}
	vec, err := e.Embed(context.Background(), "vector databases store embeddings")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestMockEmbedderEmptyText(t *testing.T) {
	e := &MockEmbedder{Dimensions: 4}
	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, vec)
}

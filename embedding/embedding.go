// Package embedding defines the text-embedding capability consumed by
// vector-backed knowledge stores. The interface is intentionally minimal so
// any embedding backend can be plugged in; the openai sub-package adapts the
// official SDK.
package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
)

// Embedder generates a vector representation for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// MockEmbedder produces deterministic pseudo-embeddings derived from token
// hashes. Two texts sharing tokens produce nearby vectors, which is enough
// for tests and local demos without a real embedding backend.
type MockEmbedder struct {
	// Dimensions sets the vector width; defaults to 64 when zero.
	Dimensions int
}

// Embed implements Embedder.
func (m *MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	dims := m.Dimensions
	if dims <= 0 {
		dims = 64
	}
	vec := make([]float32, dims)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[int(h.Sum32())%dims]++
	}
	// L2 normalize so cosine distance behaves
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

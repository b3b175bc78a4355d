package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studymesh/studymesh/provider"
)

func TestAdaptiveRoutesByQueryLength(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"short query", strings.Repeat("a", 10), "AUTO: AI Selects Optimal → Phase 1: Basic A2A"},
		{"medium query", strings.Repeat("a", 50), "AUTO: AI Selects Optimal → Phase 2: Smart A2A"},
		{"long query", strings.Repeat("a", 150), "AUTO: AI Selects Optimal → Phase 3: Self-Refinement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{docs: docFixtures(2)}
			gen := provider.NewMockGenerator("m")
			gen.SetReply(strings.Repeat("A grounded answer about the requested topic, with enough detail. ", 2))

			res, err := NewAdaptive(testConfig(store, gen)).Process(context.Background(), tt.query, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.PipelineInfo)
		})
	}
}

func TestAdaptiveDelegatesResultUnchanged(t *testing.T) {
	store := &stubStore{docs: docFixtures(2)}
	gen := provider.NewMockGenerator("m")
	gen.SetReply("A fine answer.")

	res, err := NewAdaptive(testConfig(store, gen)).Process(context.Background(), "What is chunk overlap for?", Options{})
	require.NoError(t, err)

	assert.Equal(t, "A fine answer.", res.Answer)
	assert.Len(t, res.Sources, 2)
	assert.NotEmpty(t, res.ThinkingSteps)
}

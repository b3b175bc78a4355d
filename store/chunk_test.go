package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextWindowAndOverlap(t *testing.T) {
	text := strings.Repeat("x", 2500)
	chunks := SplitText(text, 1200, 100)

	// windows: [0,1200) [1100,2300) [2200,2500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1200)
	assert.Len(t, chunks[1], 1200)
	assert.Len(t, chunks[2], 300)
}

func TestSplitTextOverlapRepeatsTail(t *testing.T) {
	text := "abcdefghij"
	chunks := SplitText(text, 6, 2)

	require.Equal(t, []string{"abcdef", "efghij"}, chunks)
}

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short", 1200, 100)
	require.Equal(t, []string{"short"}, chunks)
}

func TestSplitTextEmptyInput(t *testing.T) {
	assert.Empty(t, SplitText("", 1200, 100))
}

func TestSplitTextInvalidParamsFallBackToDefaults(t *testing.T) {
	text := strings.Repeat("y", 1500)

	chunks := SplitText(text, 0, -1)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DefaultChunkSize)

	// overlap larger than size must not loop forever
	chunks = SplitText("abcdefghij", 4, 9)
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunks)
}

package store

const (
	// DefaultChunkSize is the character window used when splitting raw
	// text for ingestion.
	DefaultChunkSize = 1200
	// DefaultChunkOverlap is the number of trailing characters repeated
	// at the start of the next chunk.
	DefaultChunkOverlap = 100
)

// SplitText splits text into fixed-size character windows with overlap.
// Non-positive size or a negative overlap (or an overlap at least as large
// as the size) falls back to the defaults. The final chunk may be shorter
// than size; empty input yields no chunks.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = 0
		}
	}

	var chunks []string
	for i := 0; i < len(text); {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
		if end == len(text) {
			break
		}
		i = end - overlap
	}
	return chunks
}

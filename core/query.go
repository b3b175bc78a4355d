package core

// Query is the analyzed form of raw user input. It is created once at
// pipeline entry by the query-analysis stage and immutable afterward.
type Query struct {
	// Raw is the user input exactly as received.
	Raw string `json:"raw"`
	// Processed is the trimmed form used by downstream stages.
	Processed string `json:"processed"`
	// NeedsRetrieval reports whether the query heuristically warrants a
	// knowledge-store lookup. False negatives are tolerated; pipelines for
	// quiz/tutor modes retrieve unconditionally regardless of this flag.
	NeedsRetrieval bool `json:"needsRetrieval"`
}

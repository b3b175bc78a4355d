package core

// Tutorial section types. Generated tutorials mix these, typically ending
// with a summary.
const (
	SectionExplanation = "explanation"
	SectionExample     = "example"
	SectionExercise    = "exercise"
	SectionSummary     = "summary"
)

// TutorSection is one part of a generated tutorial.
type TutorSection struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Type    string     `json:"type"`
	Sources []Document `json:"sources,omitempty"`
}

// User levels recognized by tutorial generation.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

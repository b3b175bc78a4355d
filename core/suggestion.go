package core

// SuggestionSet groups generated suggestions into the three fixed categories
// plus a closing tip. Each category carries exactly three entries on every
// code path, including the deterministic fallback.
type SuggestionSet struct {
	CreativeApplications []string `json:"creativeApplications"`
	LearningEducation    []string `json:"learningEducation"`
	BusinessSolutions    []string `json:"businessSolutions"`
	ProTip               string   `json:"proTip"`
}

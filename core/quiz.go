package core

// Difficulty levels recognized by quiz generation.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuizQuestion is a single multiple-choice question. Invariants: Options has
// exactly four entries and CorrectAnswer is a valid index into it. Both hold
// on every code path, including deterministic fallbacks.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	Source        string   `json:"source"`
}

// AnswerCheck is the outcome of validating a learner's selected option.
type AnswerCheck struct {
	IsCorrect     bool   `json:"isCorrect"`
	SelectedIndex int    `json:"selectedAnswer"`
	CorrectIndex  int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	Feedback      string `json:"feedback"`
}

// Check validates a selected option index against the question.
func (q QuizQuestion) Check(selected int) AnswerCheck {
	check := AnswerCheck{
		IsCorrect:     selected == q.CorrectAnswer,
		SelectedIndex: selected,
		CorrectIndex:  q.CorrectAnswer,
		Explanation:   q.Explanation,
	}
	if check.Explanation == "" {
		check.Explanation = "No explanation provided"
	}
	if check.IsCorrect {
		check.Feedback = "Excellent! You got it right!"
	} else {
		check.Feedback = "Not quite right, but keep learning!"
	}
	return check
}

// QuizTopic describes a topic the assistant advertises as quiz-ready.
type QuizTopic struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Difficulty         string `json:"difficulty"`
	EstimatedQuestions int    `json:"estimatedQuestions"`
}

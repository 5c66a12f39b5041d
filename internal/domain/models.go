package domain

import "time"

// Difficulty is the provider-defined question difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionType selects multiple-choice or true/false questions.
// TypeAny is only meaningful in QuizConfig and never appears on a Question.
type QuestionType string

const (
	TypeMultiple QuestionType = "multiple"
	TypeBoolean  QuestionType = "boolean"
	TypeAny      QuestionType = "any"
)

// Bounds enforced on user input before a session may start.
const (
	MinNameLength = 2
	MaxNameLength = 50

	MinQuestionCount = 5
	MaxQuestionCount = 50

	MinTimerSeconds = 30
	MaxTimerSeconds = 3600
)

// Question is one trivia item. PresentedAnswers is derived once at fetch
// time (correct + incorrect answers shuffled together) and stays fixed for
// the lifetime of the question, so answer ordering is stable across renders
// and across a resume.
type Question struct {
	Category         string       `json:"category"`
	Type             QuestionType `json:"type"`
	Difficulty       Difficulty   `json:"difficulty"`
	Prompt           string       `json:"prompt"`
	CorrectAnswer    string       `json:"correctAnswer"`
	IncorrectAnswers []string     `json:"incorrectAnswers"`
	PresentedAnswers []string     `json:"presentedAnswers"`
}

// QuizConfig holds the user-chosen session parameters. Category and
// Difficulty are optional; empty means "any".
type QuizConfig struct {
	QuestionCount int          `json:"questionCount"`
	Category      string       `json:"category,omitempty"`
	Difficulty    Difficulty   `json:"difficulty,omitempty"`
	Type          QuestionType `json:"type"`
	TimerSeconds  int          `json:"timerSeconds"`
}

// Validate checks the numeric bounds on the configuration.
func (c QuizConfig) Validate() error {
	if c.QuestionCount < MinQuestionCount || c.QuestionCount > MaxQuestionCount {
		return ErrQuestionCount
	}
	if c.TimerSeconds < MinTimerSeconds || c.TimerSeconds > MaxTimerSeconds {
		return ErrTimerBounds
	}
	return nil
}

// QuizState is the single authoritative session snapshot. Answers is
// positionally aligned with Questions; a nil entry means the question has
// not been answered yet.
type QuizState struct {
	UserName         string     `json:"userName"`
	Config           QuizConfig `json:"config"`
	Questions        []Question `json:"questions"`
	CurrentIndex     int        `json:"currentIndex"`
	Answers          []*string  `json:"answers"`
	StartedAt        time.Time  `json:"startedAt"`
	RemainingSeconds int        `json:"remainingSeconds"`
	IsFinished       bool       `json:"isFinished"`
}

// Results summarizes a finished session.
type Results struct {
	TotalQuestions int `json:"totalQuestions"`
	Answered       int `json:"answered"`
	Correct        int `json:"correct"`
	Incorrect      int `json:"incorrect"`
	TimeTaken      int `json:"timeTaken"`
}

// Category is one entry from the provider's category list.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

package domain

import "errors"

var (
	// ErrInvalidName is returned when the trimmed player name is too short or too long.
	ErrInvalidName = errors.New("name must be between 2 and 50 characters")
	// ErrQuestionCount is returned when the requested question count is out of bounds.
	ErrQuestionCount = errors.New("question count must be between 5 and 50")
	// ErrTimerBounds is returned when the timer duration is out of bounds.
	ErrTimerBounds = errors.New("timer must be between 30 and 3600 seconds")
	// ErrFetchFailed indicates the question provider reported a failure.
	ErrFetchFailed = errors.New("failed to fetch questions")
	// ErrNoQuestions indicates the provider returned an empty result set.
	ErrNoQuestions = errors.New("no questions available for the selected configuration")
	// ErrNoActiveQuiz is returned when an operation requires a quiz in progress.
	ErrNoActiveQuiz = errors.New("no quiz in progress")
	// ErrNotFinished is returned when results are requested before the quiz ends.
	ErrNotFinished = errors.New("quiz is not finished")
)

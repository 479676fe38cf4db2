package quiz

import "errors"

var (
	ErrEmptyTopic       = errors.New("topic is empty")
	ErrEmptyName        = errors.New("name is empty")
	ErrInvalidCode      = errors.New("invalid lobby code")
	ErrInvalidSettings  = errors.New("invalid quiz settings")
	ErrInvalidRole      = errors.New("invalid role")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoMoreQuestions  = errors.New("no more questions")
	ErrInvalidScore     = errors.New("score must not be negative")
	ErrInvalidAnswer    = errors.New("answer index out of range")

	// ErrIrrelevantTopic is a semantic rejection of the requested topic. It is
	// surfaced to the user and never replaced with fallback content.
	ErrIrrelevantTopic = errors.New("topic is not related to Kazakh language, literature, history or culture")
)

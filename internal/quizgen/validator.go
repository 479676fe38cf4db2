package quizgen

import (
	"fmt"

	"github.com/abhisek/bilim/internal/quiz"
)

// Validator checks a generated quiz. Implementations are stateless and safe
// for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if the quiz passes.
	Validate(questions []quiz.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

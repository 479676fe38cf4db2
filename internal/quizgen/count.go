package quizgen

import (
	"fmt"

	"github.com/abhisek/bilim/internal/quiz"
)

// CountValidator requires exactly the requested number of questions.
type CountValidator struct{}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(qs []quiz.Question, input GenerateInput) *ValidationError {
	if len(qs) != input.Count {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d questions, got %d", input.Count, len(qs)),
			Retryable: true,
		}
	}
	return nil
}

// UniqueIDValidator rejects quizzes that reuse a question id.
type UniqueIDValidator struct{}

func (v *UniqueIDValidator) Name() string { return "unique-id" }

func (v *UniqueIDValidator) Validate(qs []quiz.Question, _ GenerateInput) *ValidationError {
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate question id %d", q.ID),
				Retryable: true,
			}
		}
		seen[q.ID] = true
	}
	return nil
}

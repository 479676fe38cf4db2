package quizgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/bilim/internal/quiz"
)

// MaxQuestionLength is the longest question text accepted, in characters.
const MaxQuestionLength = 500

// StructuralValidator checks every question's shape: non-empty text within
// length limits, exactly four distinct non-empty options, and a correct
// index in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qs []quiz.Question, _ GenerateInput) *ValidationError {
	for i, q := range qs {
		if err := q.Valid(); err != nil {
			return v.fail(i, err.Error())
		}
		if utf8.RuneCountInString(q.Text) > MaxQuestionLength {
			return v.fail(i, fmt.Sprintf("question text exceeds %d characters", MaxQuestionLength))
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			key := strings.ToLower(strings.TrimSpace(opt))
			if seen[key] {
				return v.fail(i, fmt.Sprintf("duplicate option %q", opt))
			}
			seen[key] = true
		}
	}
	return nil
}

func (v *StructuralValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question #%d: %s", i+1, msg),
		Retryable: true,
	}
}

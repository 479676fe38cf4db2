package quizgen

import (
	"testing"

	"github.com/abhisek/bilim/internal/quiz"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "count", Message: "expected 5 questions, got 4"}
	want := `validator "count": expected 5 questions, got 4`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestCountValidator(t *testing.T) {
	v := &CountValidator{}
	qs := []quiz.Question{validQuestion(), validQuestion()}

	if err := v.Validate(qs, GenerateInput{Count: 2}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := v.Validate(qs, GenerateInput{Count: 3}); err == nil || !err.Retryable {
		t.Fatalf("expected retryable count error, got %v", err)
	}
	if err := v.Validate(qs, GenerateInput{Count: 1}); err == nil {
		t.Fatal("expected error for too many questions")
	}
}

func TestUniqueIDValidator(t *testing.T) {
	v := &UniqueIDValidator{}
	a, b := validQuestion(), validQuestion()
	b.ID = 2

	if err := v.Validate([]quiz.Question{a, b}, GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	b.ID = 1
	if err := v.Validate([]quiz.Question{a, b}, GenerateInput{}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	var names []string
	for _, v := range cfg.Validators {
		names = append(names, v.Name())
	}
	want := []string{"count", "structural", "unique-id"}
	if len(names) != len(want) {
		t.Fatalf("validators = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("validators = %v, want %v", names, want)
		}
	}
}

package quizgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/quiz"
)

func testInput(count int) GenerateInput {
	return GenerateInput{
		Topic:      "Абай Құнанбаев",
		Count:      count,
		Grade:      7,
		Difficulty: quiz.DifficultyMedium,
	}
}

// quizJSON renders n well-formed questions with the answer always first,
// the way models usually answer.
func quizJSON(n int) string {
	var parts []string
	for i := 1; i <= n; i++ {
		parts = append(parts, fmt.Sprintf(
			`{"id":%d,"question":"Сұрақ %d?","options":["Дұрыс %d","Қате А","Қате Б","Қате В"],"correctIndex":0}`,
			i, i, i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func seededConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(7, 11))
	return cfg
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(quizJSON(5)))
	gen := New(mock, seededConfig())

	qs, err := gen.Generate(context.Background(), testInput(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d: expected id %d, got %d", i, i+1, q.ID)
		}
		if err := q.Valid(); err != nil {
			t.Errorf("question %d invalid: %v", i, err)
		}
		want := fmt.Sprintf("Дұрыс %d", i+1)
		if q.Options[q.CorrectIndex] != want {
			t.Errorf("question %d: correct option moved to %q, want %q", i, q.Options[q.CorrectIndex], want)
		}
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(quizJSON(3)))
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a recorded call")
	}
	if req.System != systemPrompt {
		t.Errorf("unexpected system prompt %q", req.System)
	}
	if req.Temperature != 0.8 {
		t.Errorf("expected temperature 0.8, got %v", req.Temperature)
	}
	if req.Schema != nil {
		t.Error("raw-text generation must not request structured output")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Абай Құнанбаев") {
		t.Errorf("expected topic in user message, got %+v", req.Messages)
	}
}

func TestGenerate_FencedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("```json\n" + quizJSON(2) + "\n```"))
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
}

func TestGenerate_IrrelevantTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"error": "irrelevant"}`))
	gen := New(mock, DefaultConfig())

	input := testInput(5)
	input.Topic = "Marvel superheroes"
	_, err := gen.Generate(context.Background(), input)
	if !errors.Is(err, quiz.ErrIrrelevantTopic) {
		t.Fatalf("expected ErrIrrelevantTopic, got %v", err)
	}
}

func TestGenerate_MalformedReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"not json", "Кешіріңіз, мен көмектесе алмаймын."},
		{"three options", `[{"id":1,"question":"?","options":["a","b","c"],"correctIndex":0}]`},
		{"index out of range", `[{"id":1,"question":"?","options":["a","b","c","d"],"correctIndex":4}]`},
		{"fractional index", `[{"id":1,"question":"?","options":["a","b","c","d"],"correctIndex":1.5}]`},
		{"other error object", `{"error":"quota"}`},
		{"missing field", `[{"id":1,"options":["a","b","c","d"],"correctIndex":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(llm.NewMockProvider(llm.MockText(tt.reply)), DefaultConfig())
			_, err := gen.Generate(context.Background(), testInput(1))
			var inv *llm.ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if errors.Is(err, quiz.ErrIrrelevantTopic) {
				t.Fatal("malformed reply must not read as an irrelevant topic")
			}
		})
	}
}

func TestGenerate_ValidatorRejection(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockText(quizJSON(3))), DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput(5))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if verr.Validator != "count" {
		t.Errorf("expected count validator, got %q", verr.Validator)
	}
}

func TestGenerate_ProviderUnavailable(t *testing.T) {
	gen := New(llm.NewUnavailableProvider("no AI provider configured"), DefaultConfig())
	if gen.Available() {
		t.Fatal("expected generator to report unavailable")
	}

	_, err := gen.Generate(context.Background(), testInput(5))
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestGenerate_InputValidation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(quizJSON(1)))
	gen := New(mock, DefaultConfig())

	input := testInput(1)
	input.Topic = "   "
	if _, err := gen.Generate(context.Background(), input); !errors.Is(err, quiz.ErrEmptyTopic) {
		t.Fatalf("expected ErrEmptyTopic, got %v", err)
	}

	input = testInput(0)
	if _, err := gen.Generate(context.Background(), input); !errors.Is(err, quiz.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}

	if mock.CallCount() != 0 {
		t.Fatalf("invalid input must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestNewInput(t *testing.T) {
	in := NewInput("Қазақ хандығы", quiz.Settings{QuestionCount: 15, Grade: 9, Difficulty: quiz.DifficultyHard})
	if in.Count != 15 || in.Grade != 9 || in.Difficulty != quiz.DifficultyHard || in.Topic != "Қазақ хандығы" {
		t.Fatalf("unexpected input %+v", in)
	}
}

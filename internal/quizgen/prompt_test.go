package quizgen

import (
	"strings"
	"testing"

	"github.com/abhisek/bilim/internal/quiz"
)

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		Topic:      "  Септік жалғаулары ",
		Count:      15,
		Grade:      6,
		Difficulty: quiz.DifficultyHard,
	})

	for _, want := range []string{
		`Topic: "Септік жалғаулары"`,
		"grade 6",
		"Difficulty: hard",
		"Number of questions: 15",
		`{"error": "irrelevant"}`,
		"KAZAKH",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[]", "[]"},
		{"  []\n", "[]"},
		{"```json\n[]\n```", "[]"},
		{"```\n{\"error\":\"irrelevant\"}\n```", `{"error":"irrelevant"}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

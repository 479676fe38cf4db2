package quiz

import (
	"errors"
	"testing"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"defaults", DefaultSettings(), false},
		{"zero count", Settings{QuestionCount: 0, Grade: 5, Difficulty: DifficultyEasy}, true},
		{"grade too low", Settings{QuestionCount: 5, Grade: 0, Difficulty: DifficultyEasy}, true},
		{"grade too high", Settings{QuestionCount: 5, Grade: 12, Difficulty: DifficultyEasy}, true},
		{"grade 11", Settings{QuestionCount: 20, Grade: 11, Difficulty: DifficultyHard}, false},
		{"unknown difficulty", Settings{QuestionCount: 5, Grade: 5, Difficulty: "brutal"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSettings) {
				t.Fatalf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestQuestionValid(t *testing.T) {
	good := Question{ID: 1, Text: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3}
	if err := good.Valid(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []Question{
		{ID: 2, Text: " ", Options: []string{"a", "b", "c", "d"}},
		{ID: 3, Text: "Q?", Options: []string{"a", "b", "c"}},
		{ID: 4, Text: "Q?", Options: []string{"a", "", "c", "d"}},
		{ID: 5, Text: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 4},
		{ID: 6, Text: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: -1},
	}
	for _, q := range bad {
		if err := q.Valid(); err == nil {
			t.Errorf("question %d: expected error", q.ID)
		}
	}
}

func TestQuestionCloneIsIndependent(t *testing.T) {
	q := Question{ID: 1, Text: "Q?", Options: []string{"a", "b", "c", "d"}}
	c := q.Clone()
	c.Options[0] = "changed"
	if q.Options[0] != "a" {
		t.Fatal("clone shares options with original")
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	if err != nil || d != DifficultyHard {
		t.Fatalf("ParseDifficulty = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatal("expected error")
	}
}

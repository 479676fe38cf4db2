package quiz

import (
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// LocalPlayerID identifies the local user in rosters and leaderboards.
const LocalPlayerID = "me"

// Question is a single multiple-choice question. Immutable once created.
type Question struct {
	ID           int      `json:"id" yaml:"id"`
	Text         string   `json:"question" yaml:"question"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
}

// Valid reports whether the question satisfies the shape every consumer relies on.
func (q Question) Valid() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question %d: empty text", q.ID)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %d: expected %d options, got %d", q.ID, OptionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("question %d: option %d is empty", q.ID, i)
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return fmt.Errorf("question %d: correct index %d out of range", q.ID, q.CorrectIndex)
	}
	return nil
}

// Clone returns a copy that shares no memory with q.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// Player is a participant in a lobby.
type Player struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	AvatarColor string `json:"avatarColor,omitempty" yaml:"avatarColor,omitempty"`
	Score       int    `json:"score" yaml:"score"`
}

// Role is the local user's role.
type Role string

const (
	RoleNone    Role = ""
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is a selectable role.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Difficulty is the requested difficulty of a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the difficulties in UI order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts s into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, s)
	}
}

const (
	MinGrade = 1
	MaxGrade = 11

	DefaultQuestionCount = 10
	DefaultGrade         = 5
)

// QuestionCounts are the question-count presets offered when creating a lobby.
var QuestionCounts = []int{5, 10, 15, 20}

// Settings configures a lobby's quiz.
type Settings struct {
	QuestionCount int        `json:"questionCount"`
	Grade         int        `json:"grade"`
	Difficulty    Difficulty `json:"difficulty"`
}

// DefaultSettings returns the settings preselected on the lobby form.
func DefaultSettings() Settings {
	return Settings{
		QuestionCount: DefaultQuestionCount,
		Grade:         DefaultGrade,
		Difficulty:    DifficultyMedium,
	}
}

// Validate checks the settings before any generation work starts.
func (s Settings) Validate() error {
	if s.QuestionCount < 1 {
		return fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidSettings, s.QuestionCount)
	}
	if s.Grade < MinGrade || s.Grade > MaxGrade {
		return fmt.Errorf("%w: grade must be between %d and %d, got %d", ErrInvalidSettings, MinGrade, MaxGrade, s.Grade)
	}
	if _, err := ParseDifficulty(string(s.Difficulty)); err != nil {
		return err
	}
	return nil
}

package quizgen

import (
	"context"

	"github.com/abhisek/bilim/internal/quiz"
)

// Generator produces quiz questions for a teacher-supplied topic.
type Generator interface {
	// Generate returns exactly input.Count validated questions, or
	// quiz.ErrIrrelevantTopic when the topic is outside the supported
	// subject area. Any other error means generation failed and the
	// caller may fall back to the question bank.
	Generate(ctx context.Context, input GenerateInput) ([]quiz.Question, error)
}

// GenerateInput holds the lobby settings a quiz is generated for.
type GenerateInput struct {
	// Topic is free text in Kazakh, Russian or English.
	Topic string

	// Count is the number of questions to produce.
	Count int

	// Grade is the school grade of the audience (1-11).
	Grade int

	Difficulty quiz.Difficulty
}

// NewInput builds a GenerateInput from lobby settings.
func NewInput(topic string, s quiz.Settings) GenerateInput {
	return GenerateInput{
		Topic:      topic,
		Count:      s.QuestionCount,
		Grade:      s.Grade,
		Difficulty: s.Difficulty,
	}
}

package quizgen

import "github.com/abhisek/bilim/internal/llm"

// irrelevantMarker is the value of "error" in the reply to an
// out-of-domain topic.
const irrelevantMarker = "irrelevant"

// QuizSchema accepts either an array of questions or the irrelevant-topic
// marker object.
var QuizSchema = &llm.Schema{
	Name:        "kazakh-quiz-reply",
	Description: "A Kazakh multiple choice quiz, or a rejection of the topic",
	Definition: map[string]any{
		"oneOf": []any{
			map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "integer",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "Question text in Kazakh",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correctIndex": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
					},
					"required": []any{"id", "question", "options", "correctIndex"},
				},
			},
			map[string]any{
				"type": "object",
				"properties": map[string]any{
					"error": map[string]any{
						"type": "string",
						"enum": []any{irrelevantMarker},
					},
				},
				"required": []any{"error"},
			},
		},
	},
}

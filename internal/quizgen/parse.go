package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/quiz"
)

// stripFences removes a surrounding ```json ... ``` block that models add
// despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseReply decodes the model's reply into questions. The irrelevant marker
// yields quiz.ErrIrrelevantTopic; anything off-schema yields
// *llm.ErrInvalidResponse.
func parseReply(raw string) ([]quiz.Question, error) {
	content := json.RawMessage(stripFences(raw))
	if err := llm.ValidateJSON(QuizSchema, content); err != nil {
		return nil, err
	}

	// The schema only admits an object in the shape of the marker.
	if content[0] == '{' {
		return nil, quiz.ErrIrrelevantTopic
	}

	var questions []quiz.Question
	if err := json.Unmarshal(content, &questions); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("decode questions: %w", err)}
	}
	return questions, nil
}

package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a strict but creative Kazakh educational AI.`

const instructions = `You are an expert teacher of Kazakh language, literature, history, and culture.

First decide whether the topic is related to:
1. Kazakh language (grammar, phonetics, morphology, endings and suffixes, syntax, vocabulary)
2. Kazakh literature (writers, poets, works)
3. Kazakh history or Kazakh culture

The topic may be written in Kazakh, Russian, or English. A topic about "endings" (окончания, жалғаулар) or "grammar" in general refers to KAZAKH grammar.

If the topic is NOT related (for example Marvel, physics not specific to Kazakhstan, math, general world history), reply with exactly:
{"error": "irrelevant"}

Otherwise write a multiple choice quiz in the KAZAKH language, whatever the language of the topic.
- Be creative and interesting, and vary the kinds of questions.
- For a grammar topic (for example "Септік жалғаулары"), write practice questions on that rule.
- Every question has exactly 4 options and exactly one correct option.
- Place the correct option at a random position in each question.

Reply with ONLY a JSON array (or the error object). No markdown, no commentary:
[{"id": 1, "question": "...", "options": ["...", "...", "...", "..."], "correctIndex": 0}]`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	b.WriteString(instructions)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Topic: %q\n", strings.TrimSpace(input.Topic))
	fmt.Fprintf(&b, "Audience: grade %d students\n", input.Grade)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d", input.Count)

	return b.String()
}

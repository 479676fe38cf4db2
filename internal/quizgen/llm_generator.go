package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/quiz"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Available reports whether the generator has a reachable backend.
func (g *LLMGenerator) Available() bool {
	return llm.Available(g.provider)
}

// Generate asks the model for a quiz on input.Topic.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]quiz.Question, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, quiz.ErrEmptyTopic
	}
	if input.Count < 1 {
		return nil, fmt.Errorf("%w: question count must be positive, got %d", quiz.ErrInvalidSettings, input.Count)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	questions, err := parseReply(string(resp.Content))
	if err != nil {
		return nil, err
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(questions, input); verr != nil {
			return nil, verr
		}
	}

	return finalize(questions, g.config.Rand), nil
}

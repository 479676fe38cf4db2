package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, slog.Default()), cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from the environment and always
// returns a usable Provider. When nothing is configured, or the
// configuration is invalid, the result is an UnavailableProvider whose
// calls fail so that quiz generation falls back to the bank.
func NewProviderFromEnv(ctx context.Context) Provider {
	cfg := ConfigFromEnv()
	p, err := NewProvider(ctx, cfg)
	if err != nil {
		slog.Warn("AI question generation unavailable", "error", err)
		return NewUnavailableProvider(err.Error())
	}
	slog.Debug("AI provider configured", "provider", cfg.Provider, "model", p.ModelID())
	return p
}

package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend. Empty means none configured.
	Provider string

	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	Retry      RetryConfig

	// Timeout bounds a single generation including retries.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-3.5-turbo"
	BaseURL string // Optional. Any OpenAI-compatible endpoint.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "openai/gpt-4o-mini"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with no provider selected and default
// models for each backend.
func DefaultConfig() Config {
	return Config{
		OpenAI:     OpenAIConfig{Model: "gpt-3.5-turbo"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv builds a Config from BILIM_* variables. When
// BILIM_LLM_PROVIDER is unset the first backend with a BILIM_*_API_KEY
// is selected, then the vendors' standard key variables are probed.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.OpenAI.APIKey, "BILIM_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "BILIM_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "BILIM_OPENAI_BASE_URL")

	setFromEnv(&cfg.OpenRouter.APIKey, "BILIM_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "BILIM_OPENROUTER_MODEL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "BILIM_OPENROUTER_BASE_URL")

	setFromEnv(&cfg.Anthropic.APIKey, "BILIM_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "BILIM_ANTHROPIC_MODEL")

	setFromEnv(&cfg.Gemini.APIKey, "BILIM_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "BILIM_GEMINI_MODEL")

	if d := os.Getenv("BILIM_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	cfg.Provider = os.Getenv("BILIM_LLM_PROVIDER")
	if cfg.Provider == "" {
		switch {
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = ProviderOpenAI
		case cfg.OpenRouter.APIKey != "":
			cfg.Provider = ProviderOpenRouter
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = ProviderAnthropic
		case cfg.Gemini.APIKey != "":
			cfg.Provider = ProviderGemini
		default:
			discover(&cfg)
		}
	}

	return cfg
}

// discover probes the vendors' standard API key variables and selects the
// first provider whose key is set. OpenAI is probed first since it is the
// backend the prompts were tuned against.
func discover(cfg *Config) {
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return fmt.Errorf("no AI provider configured (set BILIM_OPENAI_API_KEY or OPENAI_API_KEY)")
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("BILIM_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("BILIM_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("BILIM_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("BILIM_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// clearLLMEnv blanks every variable ConfigFromEnv reads.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BILIM_LLM_PROVIDER", "BILIM_LLM_TIMEOUT",
		"BILIM_OPENAI_API_KEY", "BILIM_OPENAI_MODEL", "BILIM_OPENAI_BASE_URL",
		"BILIM_OPENROUTER_API_KEY", "BILIM_OPENROUTER_MODEL", "BILIM_OPENROUTER_BASE_URL",
		"BILIM_ANTHROPIC_API_KEY", "BILIM_ANTHROPIC_MODEL",
		"BILIM_GEMINI_API_KEY", "BILIM_GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENROUTER_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_NothingSet(t *testing.T) {
	clearLLMEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "" {
		t.Fatalf("expected no provider, got %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("expected default OpenAI model, got %q", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error with no provider")
	}
}

func TestConfigFromEnv_Inference(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
	}{
		{"bilim openai key", map[string]string{"BILIM_OPENAI_API_KEY": "sk"}, ProviderOpenAI},
		{"bilim anthropic key", map[string]string{"BILIM_ANTHROPIC_API_KEY": "sk"}, ProviderAnthropic},
		{"standard openai key", map[string]string{"OPENAI_API_KEY": "sk"}, ProviderOpenAI},
		{"standard gemini key", map[string]string{"GEMINI_API_KEY": "k"}, ProviderGemini},
		{"openai wins discovery", map[string]string{"OPENAI_API_KEY": "a", "ANTHROPIC_API_KEY": "b"}, ProviderOpenAI},
		{"explicit provider", map[string]string{"BILIM_LLM_PROVIDER": "mock", "OPENAI_API_KEY": "a"}, ProviderMock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLLMEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := ConfigFromEnv()
			if cfg.Provider != tt.provider {
				t.Fatalf("expected provider %q, got %q", tt.provider, cfg.Provider)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigFromEnv_Timeout(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("BILIM_LLM_TIMEOUT", "10s")
	if got := ConfigFromEnv().Timeout; got != 10*time.Second {
		t.Fatalf("expected 10s, got %v", got)
	}

	t.Setenv("BILIM_LLM_TIMEOUT", "soon")
	if got := ConfigFromEnv().Timeout; got != DefaultConfig().Timeout {
		t.Fatalf("expected default on bad duration, got %v", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, true},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "llama"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry wrapper, got %T", p)
	}
	if p.ModelID() != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestNewProviderFromEnv_Unavailable(t *testing.T) {
	clearLLMEnv(t)

	p := NewProviderFromEnv(context.Background())
	if Available(p) {
		t.Fatalf("expected unavailable provider, got %T", p)
	}
	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestNewProviderFromEnv_Mock(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("BILIM_LLM_PROVIDER", ProviderMock)

	p := NewProviderFromEnv(context.Background())
	if !Available(p) {
		t.Fatal("expected mock provider to be available")
	}
}

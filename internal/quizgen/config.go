package quizgen

import "math/rand/v2"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated quiz; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness.
	Temperature float64

	// Rand drives option scrambling. Nil uses the global source. A non-nil
	// Rand must not be shared between concurrent Generate calls.
	Rand *rand.Rand
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&CountValidator{},
			&StructuralValidator{},
			&UniqueIDValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}

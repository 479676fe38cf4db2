package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	// CodeAlphabet is the set of characters a lobby code is drawn from.
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the length of every lobby code.
	CodeLength = 6

	// MinCodeInput is the shortest input the join form submits.
	MinCodeInput = 4
)

// GenerateLobbyCode returns a random code of CodeLength characters chosen
// uniformly from CodeAlphabet. A nil r uses the global source.
func GenerateLobbyCode(r *rand.Rand) string {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = CodeAlphabet[intN(len(CodeAlphabet))]
	}
	return string(b)
}

// NormalizeCode trims and upper-cases user input.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateCode normalizes s and checks that it is a well-formed lobby code.
func ValidateCode(s string) (string, error) {
	code := NormalizeCode(s)
	if len(code) != CodeLength {
		return "", fmt.Errorf("%w: %q must be %d characters", ErrInvalidCode, code, CodeLength)
	}
	for _, c := range code {
		if !strings.ContainsRune(CodeAlphabet, c) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidCode, code, c)
		}
	}
	return code, nil
}

package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerateLobbyCode_Shape(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	counts := make(map[rune]int)
	const trials = 10000

	for i := 0; i < trials; i++ {
		code := GenerateLobbyCode(r)
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q is not upper-case", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(CodeAlphabet, c) {
				t.Fatalf("code %q contains %q", code, c)
			}
			counts[c]++
		}
	}

	if len(counts) != len(CodeAlphabet) {
		t.Fatalf("expected all %d symbols to appear, got %d", len(CodeAlphabet), len(counts))
	}

	// 60000 draws over 36 symbols: expected ~1667 each. Allow a wide band.
	expected := float64(trials*CodeLength) / float64(len(CodeAlphabet))
	for c, n := range counts {
		if float64(n) < expected*0.85 || float64(n) > expected*1.15 {
			t.Errorf("symbol %q drawn %d times, expected about %.0f", c, n, expected)
		}
	}
}

func TestGenerateLobbyCode_GlobalSource(t *testing.T) {
	code := GenerateLobbyCode(nil)
	if _, err := ValidateCode(code); err != nil {
		t.Fatalf("generated code %q did not validate: %v", code, err)
	}
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ab12cd", "AB12CD", false},
		{"  XYZ789 ", "XYZ789", false},
		{"ABC", "", true},
		{"ABCDEFG", "", true},
		{"AB-12C", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ValidateCode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ValidateCode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("ValidateCode(%q) error = %v, want ErrInvalidCode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ValidateCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

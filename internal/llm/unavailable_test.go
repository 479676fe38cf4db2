package llm

import (
	"context"
	"errors"
	"testing"
)

func TestUnavailableProvider(t *testing.T) {
	p := NewUnavailableProvider("no AI provider configured")

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	if !unavail.Permanent {
		t.Fatal("expected a permanent failure")
	}
	if p.ModelID() != "unavailable" {
		t.Fatalf("expected 'unavailable', got %q", p.ModelID())
	}
}

func TestAvailable(t *testing.T) {
	if Available(nil) {
		t.Fatal("nil provider must not be available")
	}
	if Available(NewUnavailableProvider("x")) {
		t.Fatal("unavailable provider must not be available")
	}
	if !Available(NewMockProvider()) {
		t.Fatal("mock provider should be available")
	}
}

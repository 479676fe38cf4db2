package llm

import (
	"context"
	"errors"
)

// UnavailableProvider stands in when no AI backend is configured. Every
// call fails with a permanent *ErrProviderUnavailable so consumers take
// their fallback path.
type UnavailableProvider struct {
	Reason string
}

// NewUnavailableProvider returns a provider that always fails with reason.
func NewUnavailableProvider(reason string) *UnavailableProvider {
	return &UnavailableProvider{Reason: reason}
}

func (u *UnavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Err: errors.New(u.Reason), Permanent: true}
}

func (u *UnavailableProvider) ModelID() string {
	return "unavailable"
}

// Available reports whether p can reach a real backend.
func Available(p Provider) bool {
	if p == nil {
		return false
	}
	_, none := p.(*UnavailableProvider)
	return !none
}
